package assignment

import (
	"errors"
	"fmt"

	"cargopay/internal/pkg/errs"
)

// PaymentMethod is how a driver collects the amount on delivery.
type PaymentMethod string

const (
	// PaymentMethodCash is cash on delivery, no further evidence needed.
	PaymentMethodCash PaymentMethod = "CASH"

	// PaymentMethodBankTransfer requires a transfer reference or an
	// uploaded proof image.
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"

	// PaymentMethodTabby is deferred third-party settlement and requires
	// the name of the confirming party.
	PaymentMethodTabby PaymentMethod = "TABBY"
)

// Validate checks that the payment method is a known value.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodTabby:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a known payment method", string(m)))
	}
}

// String returns the wire representation of the method.
func (m PaymentMethod) String() string {
	return string(m)
}

// ErrPaymentDetailsAreNotConstructed is returned when PaymentDetails
// were not created via NewPaymentDetails.
var ErrPaymentDetailsAreNotConstructed = errors.New(
	"PaymentDetails must be created via NewPaymentDetails constructor",
)

// PaymentDetails is a value object describing how a completed payment
// was evidenced. Construction enforces the method-specific
// preconditions, so a constructed value is always submittable.
type PaymentDetails struct {
	method      PaymentMethod
	reference   string
	proofRef    string
	confirmedBy string

	isConstructed bool
}

// NewPaymentDetails creates validated payment details.
//
// Method preconditions:
//   - CASH: none
//   - BANK_TRANSFER: a non-empty reference or a stored proof reference
//   - TABBY: a non-empty confirming-party name
func NewPaymentDetails(method PaymentMethod, reference, proofRef, confirmedBy string) (PaymentDetails, error) {
	if err := method.Validate(); err != nil {
		return PaymentDetails{}, err
	}

	switch method {
	case PaymentMethodBankTransfer:
		if reference == "" && proofRef == "" {
			return PaymentDetails{}, errs.NewValueIsRequiredError("payment reference or proof image")
		}
	case PaymentMethodTabby:
		if confirmedBy == "" {
			return PaymentDetails{}, errs.NewValueIsRequiredError("confirming party")
		}
	case PaymentMethodCash:
	}

	return PaymentDetails{
		method:        method,
		reference:     reference,
		proofRef:      proofRef,
		confirmedBy:   confirmedBy,
		isConstructed: true,
	}, nil
}

// Validate ensures the details were created via NewPaymentDetails.
func (p PaymentDetails) Validate() error {
	if !p.isConstructed {
		return ErrPaymentDetailsAreNotConstructed
	}
	return nil
}

// Method returns the payment method.
func (p PaymentDetails) Method() PaymentMethod { return p.method }

// Reference returns the transfer reference, if any.
func (p PaymentDetails) Reference() string { return p.reference }

// ProofRef returns the stored proof-image reference, if any.
func (p PaymentDetails) ProofRef() string { return p.proofRef }

// ConfirmedBy returns the confirming-party name, if any.
func (p PaymentDetails) ConfirmedBy() string { return p.confirmedBy }
