package assignment

import (
	"errors"

	"cargopay/internal/pkg/errs"
)

// ErrDriverIdentityIsNotConstructed is returned when a DriverIdentity
// was not created via NewDriverIdentity.
var ErrDriverIdentityIsNotConstructed = errors.New(
	"DriverIdentity must be created via NewDriverIdentity constructor",
)

// DriverIdentity is the name/phone pair recorded for the person who
// collects a delivery. Once an assignment stores a complete pair it is
// write-once: the same handset may be shared, but a different person
// must not take over a started collection.
type DriverIdentity struct {
	name  string
	phone string

	isConstructed bool
}

// NewDriverIdentity creates a validated identity. Both fields are
// required.
func NewDriverIdentity(name, phone string) (DriverIdentity, error) {
	if err := errors.Join(
		requireField(name, "driverName"),
		requireField(phone, "driverPhone"),
	); err != nil {
		return DriverIdentity{}, err
	}

	return DriverIdentity{name: name, phone: phone, isConstructed: true}, nil
}

// Validate ensures the identity was created via NewDriverIdentity.
func (d DriverIdentity) Validate() error {
	if !d.isConstructed {
		return ErrDriverIdentityIsNotConstructed
	}
	return nil
}

// Name returns the driver's name.
func (d DriverIdentity) Name() string { return d.name }

// Phone returns the driver's phone number.
func (d DriverIdentity) Phone() string { return d.phone }

// IsEqual reports whether both identities carry the same name and phone.
func (d DriverIdentity) IsEqual(other DriverIdentity) bool {
	return d.name == other.name && d.phone == other.phone
}

func requireField(value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
