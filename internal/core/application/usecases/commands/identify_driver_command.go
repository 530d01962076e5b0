package commands

import (
	"errors"

	"cargopay/internal/pkg/errs"
	"cargopay/internal/pkg/guard"
)

var ErrIdentifyDriverCommandIsNotConstructed = errors.New(
	"IdentifyDriverCommand must be created via NewIdentifyDriverCommand constructor",
)

// IdentifyDriverCommand records the collecting driver's identity against
// the assignment behind an access code. The identity is write-once.
type IdentifyDriverCommand struct { //nolint:recvcheck //using for validation
	accessCode  string
	driverName  string
	driverPhone string

	guard guard.ConstructorGuard
}

// NewIdentifyDriverCommand creates a command to lock a driver identity.
// All three fields are required.
func NewIdentifyDriverCommand(accessCode, driverName, driverPhone string) (IdentifyDriverCommand, error) {
	command := IdentifyDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccessCode(accessCode),
		command.setDriverName(driverName),
		command.setDriverPhone(driverPhone),
	); err != nil {
		return IdentifyDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c IdentifyDriverCommand) Validate() error {
	return c.guard.Validate(ErrIdentifyDriverCommandIsNotConstructed)
}

// AccessCode returns the code gating the assignment.
func (c IdentifyDriverCommand) AccessCode() string {
	return c.accessCode
}

// DriverName returns the driver's name.
func (c IdentifyDriverCommand) DriverName() string {
	return c.driverName
}

// DriverPhone returns the driver's phone number.
func (c IdentifyDriverCommand) DriverPhone() string {
	return c.driverPhone
}

func (c *IdentifyDriverCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("accessCode")
	}

	c.accessCode = accessCode
	return nil
}

func (c *IdentifyDriverCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	c.driverName = driverName
	return nil
}

func (c *IdentifyDriverCommand) setDriverPhone(driverPhone string) error {
	if driverPhone == "" {
		return errs.NewValueIsRequiredError("driverPhone")
	}

	c.driverPhone = driverPhone
	return nil
}
