package commands

import (
	"errors"
	"fmt"
	"time"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"
	"cargopay/internal/pkg/guard"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand requests a delivery assignment for a completed
// verification record: the billable amount is frozen and an access code
// is minted with the given validity window.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID   kernel.UUID
	verificationID kernel.UUID
	codeTTL        time.Duration

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to dispatch a delivery
// assignment. The code TTL must be positive.
func NewCreateAssignmentCommand(
	assignmentID, verificationID kernel.UUID,
	codeTTL time.Duration,
) (CreateAssignmentCommand, error) {
	command := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setVerificationID(verificationID),
		command.setCodeTTL(codeTTL),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to create.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// VerificationID returns the completed verification the amount comes from.
func (c CreateAssignmentCommand) VerificationID() kernel.UUID {
	return c.verificationID
}

// CodeTTL returns the validity window of the minted access code.
func (c CreateAssignmentCommand) CodeTTL() time.Duration {
	return c.codeTTL
}

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setVerificationID(verificationID kernel.UUID) error {
	if err := verificationID.Validate(); err != nil {
		return err
	}

	c.verificationID = verificationID
	return nil
}

func (c *CreateAssignmentCommand) setCodeTTL(codeTTL time.Duration) error {
	if codeTTL <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("codeTTL",
			fmt.Errorf("%s is not positive", codeTTL))
	}

	c.codeTTL = codeTTL
	return nil
}
