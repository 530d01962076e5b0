package commands

import (
	"errors"

	"cargopay/internal/pkg/errs"
	"cargopay/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand records a failed delivery attempt. The access
// code survives cancellation so the driver can retry later.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	accessCode string
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel an attempt.
// The reason may be empty; a placeholder is stored in that case.
func NewCancelDeliveryCommand(accessCode, reason string) (CancelDeliveryCommand, error) {
	command := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAccessCode(accessCode); err != nil {
		return CancelDeliveryCommand{}, err
	}

	command.reason = reason

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// AccessCode returns the code gating the assignment.
func (c CancelDeliveryCommand) AccessCode() string {
	return c.accessCode
}

// Reason returns the driver's stated reason, possibly empty.
func (c CancelDeliveryCommand) Reason() string {
	return c.reason
}

func (c *CancelDeliveryCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("accessCode")
	}

	c.accessCode = accessCode
	return nil
}
