package commands

import (
	"errors"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/pkg/guard"
)

var ErrOpenVerificationCommandIsNotConstructed = errors.New(
	"OpenVerificationCommand must be created via NewOpenVerificationCommand constructor",
)

// OpenVerificationCommand represents a request to open a draft
// verification record for an incoming shipment request. Initial
// measurements are optional; operators usually weigh the cargo later.
type OpenVerificationCommand struct { //nolint:recvcheck //using for validation
	verificationID   kernel.UUID
	requestID        kernel.UUID
	route            rates.Route
	actualWeight     kernel.Weight
	volumetricWeight kernel.Weight

	guard guard.ConstructorGuard
}

// NewOpenVerificationCommand creates a command to open a verification.
// Validates the identifiers and the route; weights may be zero.
func NewOpenVerificationCommand(
	verificationID, requestID kernel.UUID,
	route rates.Route,
	actualWeight, volumetricWeight kernel.Weight,
) (OpenVerificationCommand, error) {
	command := OpenVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVerificationID(verificationID),
		command.setRequestID(requestID),
		command.setRoute(route),
	); err != nil {
		return OpenVerificationCommand{}, err
	}

	command.actualWeight = actualWeight
	command.volumetricWeight = volumetricWeight

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenVerificationCommand) Validate() error {
	return c.guard.Validate(ErrOpenVerificationCommandIsNotConstructed)
}

// VerificationID returns the identifier of the record to open.
func (c OpenVerificationCommand) VerificationID() kernel.UUID {
	return c.verificationID
}

// RequestID returns the shipment request the record belongs to.
func (c OpenVerificationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Route returns the shipping lane.
func (c OpenVerificationCommand) Route() rates.Route {
	return c.route
}

// ActualWeight returns the initial scale weight, zero when unmeasured.
func (c OpenVerificationCommand) ActualWeight() kernel.Weight {
	return c.actualWeight
}

// VolumetricWeight returns the initial dimensional weight, zero when
// unmeasured.
func (c OpenVerificationCommand) VolumetricWeight() kernel.Weight {
	return c.volumetricWeight
}

func (c *OpenVerificationCommand) setVerificationID(verificationID kernel.UUID) error {
	if err := verificationID.Validate(); err != nil {
		return err
	}

	c.verificationID = verificationID
	return nil
}

func (c *OpenVerificationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *OpenVerificationCommand) setRoute(route rates.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}
