package queries

import (
	"errors"
	"time"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/guard"
)

var ErrGetVerificationQueryIsNotConstructed = errors.New(
	"GetVerificationQuery must be created via NewGetVerificationQuery constructor",
)

// GetVerificationQuery retrieves one verification record for the
// operator screen, draft or completed.
type GetVerificationQuery struct {
	verificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVerificationQuery creates a query for one verification record.
func NewGetVerificationQuery(verificationID kernel.UUID) (GetVerificationQuery, error) {
	if err := verificationID.Validate(); err != nil {
		return GetVerificationQuery{}, err
	}

	return GetVerificationQuery{
		verificationID: verificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVerificationQuery) Validate() error {
	return q.guard.Validate(ErrGetVerificationQueryIsNotConstructed)
}

// VerificationID returns the record to look up.
func (q GetVerificationQuery) VerificationID() kernel.UUID {
	return q.verificationID
}

// GetVerificationQueryResponse carries the full state of one
// verification record, including every derived billing field.
type GetVerificationQueryResponse struct {
	VerificationID kernel.UUID
	RequestID      kernel.UUID

	InvoiceNumber  string
	TrackingNumber string
	Route          string

	ActualWeight     kernel.Weight
	VolumetricWeight kernel.Weight
	ChargeableWeight kernel.Weight
	WeightType       string

	RatePerKg    kernel.Money
	BracketLabel string
	RateIsManual bool
	Amount       kernel.Money

	BoxCount        int
	Classification  string
	CargoService    string
	ReceiverAddress string
	ReceiverPhone   string
	OperatorName    string
	SenderChecked   bool
	ReceiverChecked bool

	CompletedAt *time.Time
	IsCompleted bool
}
