package commands

import (
	"errors"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/pkg/guard"
)

var ErrUpdateVerificationCommandIsNotConstructed = errors.New(
	"UpdateVerificationCommand must be created via NewUpdateVerificationCommand constructor",
)

// UpdateVerificationCommand carries an operator's full input for a draft
// verification record. The whole input is applied at once; derived
// billing fields are recomputed by the aggregate.
type UpdateVerificationCommand struct { //nolint:recvcheck //using for validation
	verificationID kernel.UUID
	input          verification.Input

	guard guard.ConstructorGuard
}

// NewUpdateVerificationCommand creates a command to apply operator input.
// Validates the identifier and the enumerated input fields; the
// completion conditions are checked later, by CompleteVerification.
func NewUpdateVerificationCommand(
	verificationID kernel.UUID,
	input verification.Input,
) (UpdateVerificationCommand, error) {
	command := UpdateVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVerificationID(verificationID),
		command.setInput(input),
	); err != nil {
		return UpdateVerificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVerificationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVerificationCommandIsNotConstructed)
}

// VerificationID returns the identifier of the record to update.
func (c UpdateVerificationCommand) VerificationID() kernel.UUID {
	return c.verificationID
}

// Input returns the operator-entered facts to apply.
func (c UpdateVerificationCommand) Input() verification.Input {
	return c.input
}

func (c *UpdateVerificationCommand) setVerificationID(verificationID kernel.UUID) error {
	if err := verificationID.Validate(); err != nil {
		return err
	}

	c.verificationID = verificationID
	return nil
}

func (c *UpdateVerificationCommand) setInput(input verification.Input) error {
	if err := errors.Join(
		input.Route.Validate(),
		input.Classification.Validate(),
		input.CargoService.Validate(),
	); err != nil {
		return err
	}

	c.input = input
	return nil
}
