package commands

import (
	"errors"

	"cargopay/internal/pkg/guard"
)

var ErrExpireAccessCodesCommandIsNotConstructed = errors.New(
	"ExpireAccessCodesCommand must be created via NewExpireAccessCodesCommand constructor",
)

// ExpireAccessCodesCommand triggers invalidation of all access codes
// past their expiry. This batch operation runs on a schedule.
type ExpireAccessCodesCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireAccessCodesCommand creates a command to expire stale codes.
// This is a parameterless command that processes all pending assignments.
func NewExpireAccessCodesCommand() ExpireAccessCodesCommand {
	command := ExpireAccessCodesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireAccessCodesCommandIsNotConstructed if validation fails.
func (c *ExpireAccessCodesCommand) Validate() error {
	return c.guard.Validate(ErrExpireAccessCodesCommandIsNotConstructed)
}
