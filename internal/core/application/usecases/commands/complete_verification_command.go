package commands

import (
	"errors"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/guard"
)

var ErrCompleteVerificationCommandIsNotConstructed = errors.New(
	"CompleteVerificationCommand must be created via NewCompleteVerificationCommand constructor",
)

// CompleteVerificationCommand requests the draft→completed transition of
// a verification record.
type CompleteVerificationCommand struct { //nolint:recvcheck //using for validation
	verificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteVerificationCommand creates a command to complete a
// verification record.
func NewCompleteVerificationCommand(verificationID kernel.UUID) (CompleteVerificationCommand, error) {
	command := CompleteVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVerificationID(verificationID); err != nil {
		return CompleteVerificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteVerificationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteVerificationCommandIsNotConstructed)
}

// VerificationID returns the identifier of the record to complete.
func (c CompleteVerificationCommand) VerificationID() kernel.UUID {
	return c.verificationID
}

func (c *CompleteVerificationCommand) setVerificationID(verificationID kernel.UUID) error {
	if err := verificationID.Validate(); err != nil {
		return err
	}

	c.verificationID = verificationID
	return nil
}
