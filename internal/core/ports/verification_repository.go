// Package ports defines repository interfaces for the cargopay domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/verification"
)

// VerificationRepository defines the persistence contract for
// verification record aggregates.
type VerificationRepository interface {
	// Add persists a new verification record to storage.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *verification.VerificationRecord) error

	// Update persists changes to an existing verification record.
	// The record must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *verification.VerificationRecord) error

	// Get retrieves a verification record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*verification.VerificationRecord, error)

	// GetByRequestID retrieves the record opened for a shipment request.
	// Returns errs.ObjectNotFoundError when no record was opened yet; the
	// open operation uses this to stay idempotent per request.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*verification.VerificationRecord, error)
}
