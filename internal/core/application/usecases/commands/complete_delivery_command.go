package commands

import (
	"errors"
	"io"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/pkg/errs"
	"cargopay/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand records a collected payment for the assignment
// behind an access code. Bank transfers may carry a proof image instead
// of a reference; the image is streamed to proof storage before the
// payment facts are written.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	accessCode  string
	method      assignment.PaymentMethod
	reference   string
	confirmedBy string

	proof            io.Reader
	proofContentType string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// The method-specific evidence rules are enforced here so an invalid
// submission never reaches storage:
//   - CASH: no evidence
//   - BANK_TRANSFER: a reference or a proof image
//   - TABBY: a confirming-party name
func NewCompleteDeliveryCommand(
	accessCode string,
	method assignment.PaymentMethod,
	reference, confirmedBy string,
	proof io.Reader,
	proofContentType string,
) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccessCode(accessCode),
		command.setMethod(method),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	switch method {
	case assignment.PaymentMethodBankTransfer:
		if reference == "" && proof == nil {
			return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("payment reference or proof image")
		}
	case assignment.PaymentMethodTabby:
		if confirmedBy == "" {
			return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("confirming party")
		}
	case assignment.PaymentMethodCash:
	}

	command.reference = reference
	command.confirmedBy = confirmedBy
	command.proof = proof
	command.proofContentType = proofContentType

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// AccessCode returns the code gating the assignment.
func (c CompleteDeliveryCommand) AccessCode() string {
	return c.accessCode
}

// Method returns the payment method.
func (c CompleteDeliveryCommand) Method() assignment.PaymentMethod {
	return c.method
}

// Reference returns the transfer reference, if any.
func (c CompleteDeliveryCommand) Reference() string {
	return c.reference
}

// ConfirmedBy returns the confirming-party name, if any.
func (c CompleteDeliveryCommand) ConfirmedBy() string {
	return c.confirmedBy
}

// Proof returns the proof image content, nil when none was uploaded.
func (c CompleteDeliveryCommand) Proof() io.Reader {
	return c.proof
}

// ProofContentType returns the MIME type of the proof image.
func (c CompleteDeliveryCommand) ProofContentType() string {
	return c.proofContentType
}

func (c *CompleteDeliveryCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("accessCode")
	}

	c.accessCode = accessCode
	return nil
}

func (c *CompleteDeliveryCommand) setMethod(method assignment.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
