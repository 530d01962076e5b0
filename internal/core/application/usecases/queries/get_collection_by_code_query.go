// Package queries contains read-only operations over the persistence
// layer. Query handlers bypass the aggregates and read raw rows, the
// read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"cargopay/internal/core/domain/model/collection"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"
	"cargopay/internal/pkg/guard"
)

var ErrGetCollectionByCodeQueryIsNotConstructed = errors.New(
	"GetCollectionByCodeQuery must be created via NewGetCollectionByCodeQuery constructor",
)

// GetCollectionByCodeQuery is the driver's entry point: given an access
// code it returns everything the code-gated collection page needs to
// render, including where in the workflow the session starts.
type GetCollectionByCodeQuery struct {
	accessCode string

	guard guard.ConstructorGuard
}

// NewGetCollectionByCodeQuery creates a query for one access code.
func NewGetCollectionByCodeQuery(accessCode string) (GetCollectionByCodeQuery, error) {
	if accessCode == "" {
		return GetCollectionByCodeQuery{}, errs.NewValueIsRequiredError("accessCode")
	}

	return GetCollectionByCodeQuery{
		accessCode: accessCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollectionByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionByCodeQueryIsNotConstructed)
}

// AccessCode returns the code to look up.
func (q GetCollectionByCodeQuery) AccessCode() string {
	return q.accessCode
}

// GetCollectionByCodeQueryResponse carries the collection page facts for
// one assignment.
type GetCollectionByCodeQueryResponse struct {
	AssignmentID   kernel.UUID
	VerificationID kernel.UUID
	Amount         kernel.Money

	InvoiceNumber   string
	TrackingNumber  string
	BoxCount        int
	ReceiverAddress string
	ReceiverPhone   string

	DriverName  string
	DriverPhone string
	HasDriver   bool

	Delivered          bool
	PaymentCollected   bool
	PaymentMethod      string
	PaymentReference   string
	PaymentProofRef    string
	PaymentConfirmedBy string
	CancellationReason string

	CodeExpiresAt time.Time

	// AlreadyProcessed and Expired are the guard flags of the workflow:
	// a processed assignment renders read-only, an expired one is
	// refused.
	AlreadyProcessed bool
	Expired          bool

	// EntryStage is where a fresh session starts, Review when the driver
	// identity is already locked.
	EntryStage collection.Stage
}
