package assignment

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"cargopay/internal/pkg/errs"
)

// accessCodeLength is the number of characters in a generated code.
const accessCodeLength = 8

// accessCodeAlphabet avoids visually ambiguous characters (0/O, 1/I/L)
// because drivers read codes off paper labels and type them on phones.
const accessCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// ErrAccessCodeIsNotConstructed is returned when an AccessCode was not
// created through a factory method.
var ErrAccessCodeIsNotConstructed = errors.New(
	"AccessCode must be created via NewAccessCode or RestoreAccessCode",
)

// AccessCode is the single-use token that lets an unauthenticated driver
// reach the payment-collection workflow for exactly one assignment.
// It tracks its own expiry and consumption.
type AccessCode struct {
	value     string
	expiresAt time.Time
	used      bool

	isConstructed bool
}

// NewAccessCode mints a fresh unused code valid for ttl from now.
func NewAccessCode(now time.Time, ttl time.Duration) (AccessCode, error) {
	if ttl <= 0 {
		return AccessCode{}, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not positive", ttl))
	}

	buf := make([]byte, accessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return AccessCode{}, err
	}
	for i, b := range buf {
		buf[i] = accessCodeAlphabet[int(b)%len(accessCodeAlphabet)]
	}

	return AccessCode{
		value:         string(buf),
		expiresAt:     now.Add(ttl),
		isConstructed: true,
	}, nil
}

// RestoreAccessCode reconstructs a code from persistence.
func RestoreAccessCode(value string, expiresAt time.Time, used bool) (AccessCode, error) {
	if value == "" {
		return AccessCode{}, errs.NewValueIsRequiredError("accessCode")
	}
	return AccessCode{
		value:         value,
		expiresAt:     expiresAt,
		used:          used,
		isConstructed: true,
	}, nil
}

// Validate ensures the code was created through a factory method.
func (c AccessCode) Validate() error {
	if !c.isConstructed {
		return ErrAccessCodeIsNotConstructed
	}
	return nil
}

// Value returns the code string.
func (c AccessCode) Value() string { return c.value }

// ExpiresAt returns the expiry instant.
func (c AccessCode) ExpiresAt() time.Time { return c.expiresAt }

// IsUsed reports whether the code has been consumed by a completed
// payment.
func (c AccessCode) IsUsed() bool { return c.used }

// IsExpired reports whether the code has passed its expiry at now.
func (c AccessCode) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

// consume marks the code used. Called by the aggregate when payment
// completes; cancellation never consumes the code.
func (c *AccessCode) consume() {
	c.used = true
}
