package ports

import (
	"context"
	"io"
)

// ProofStorage stores payment proof images uploaded by drivers during
// bank-transfer completion. Implementations return an opaque reference
// that PaymentDetails records as its proofRef.
type ProofStorage interface {
	// Store saves the image content and returns its reference.
	Store(ctx context.Context, contentType string, content io.Reader) (string, error)

	// Load streams back a stored image by reference.
	// Returns errs.ObjectNotFoundError for an unknown reference.
	Load(ctx context.Context, ref string) (contentType string, content io.ReadCloser, err error)
}
