package assignment

import (
	"errors"
	"fmt"
	"time"

	"cargopay/internal/core/domain/model/collection"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"
)

var (
	// ErrDeliveryAssignmentIsNotConstructed is returned when a
	// DeliveryAssignment was not created through a factory method.
	ErrDeliveryAssignmentIsNotConstructed = errors.New(
		"DeliveryAssignment must be created via NewDeliveryAssignment constructor",
	)

	// ErrAlreadyProcessed marks an entry attempt with a code that was
	// already consumed by a completed payment. Callers render the
	// assignment as read-only history.
	ErrAlreadyProcessed = errors.New("assignment already processed")

	// ErrAccessCodeExpired marks an entry attempt past the code's expiry.
	ErrAccessCodeExpired = errors.New("access code expired")

	// ErrDriverIdentityLocked marks an attempt to change a recorded
	// driver identity.
	ErrDriverIdentityLocked = errors.New("driver identity is locked")

	// ErrDriverIdentityMissing marks a cancel/complete attempt before a
	// driver identified themselves.
	ErrDriverIdentityMissing = errors.New("driver identity is not recorded")
)

// defaultCancellationReason is stored when a driver cancels without
// giving a reason.
const defaultCancellationReason = "No reason provided"

// DeliveryAssignment is the aggregate a driver executes: the billable
// amount frozen at creation, the single-use access code, and the
// delivery/payment state the collection workflow mutates.
//
// The payment workflow may only touch driver, status, payment and
// cancellation fields. Amount and access-code value are immutable after
// construction; the code flips to used exactly once, together with the
// payment that consumes it.
type DeliveryAssignment struct {
	id             kernel.UUID
	verificationID kernel.UUID
	amount         kernel.Money

	code AccessCode

	deliveryStatus     DeliveryStatus
	paymentCollected   bool
	payment            *PaymentDetails
	driver             *DriverIdentity
	cancellationReason string

	isConstructed bool
}

// NewDeliveryAssignment creates an assignment for a completed
// verification, freezing the billable amount and minting state around
// the supplied access code.
func NewDeliveryAssignment(
	id, verificationID kernel.UUID,
	amount kernel.Money,
	code AccessCode,
) (*DeliveryAssignment, error) {
	if err := errors.Join(
		id.Validate(),
		verificationID.Validate(),
		code.Validate(),
	); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("amount %s is not positive", amount))
	}

	return &DeliveryAssignment{
		id:             id,
		verificationID: verificationID,
		amount:         amount,
		code:           code,
		deliveryStatus: NotDelivered,
		isConstructed:  true,
	}, nil
}

// RestoreParams carries the persisted state of an assignment for
// reconstruction from storage.
type RestoreParams struct {
	ID                 kernel.UUID
	VerificationID     kernel.UUID
	Amount             kernel.Money
	Code               AccessCode
	DeliveryStatus     DeliveryStatus
	PaymentCollected   bool
	Payment            *PaymentDetails
	Driver             *DriverIdentity
	CancellationReason string
}

// RestoreDeliveryAssignment reconstructs an assignment from persistence.
// Used by repositories only.
func RestoreDeliveryAssignment(p RestoreParams) (*DeliveryAssignment, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.VerificationID.Validate(),
		p.Code.Validate(),
		p.DeliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryAssignment{
		id:                 p.ID,
		verificationID:     p.VerificationID,
		amount:             p.Amount,
		code:               p.Code,
		deliveryStatus:     p.DeliveryStatus,
		paymentCollected:   p.PaymentCollected,
		payment:            p.Payment,
		driver:             p.Driver,
		cancellationReason: p.CancellationReason,
		isConstructed:      true,
	}, nil
}

// Validate ensures the assignment was created through a factory method.
func (a *DeliveryAssignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrDeliveryAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by identifier.
func (a *DeliveryAssignment) IsEqual(other *DeliveryAssignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *DeliveryAssignment) ID() kernel.UUID { return a.id }

// VerificationID returns the verification record the amount came from.
func (a *DeliveryAssignment) VerificationID() kernel.UUID { return a.verificationID }

// Amount returns the amount to collect. Immutable after creation.
func (a *DeliveryAssignment) Amount() kernel.Money { return a.amount }

// AccessCode returns the single-use code state.
func (a *DeliveryAssignment) AccessCode() AccessCode { return a.code }

// DeliveryStatus returns the physical delivery outcome.
func (a *DeliveryAssignment) DeliveryStatus() DeliveryStatus { return a.deliveryStatus }

// PaymentCollected reports whether the amount has been collected.
func (a *DeliveryAssignment) PaymentCollected() bool { return a.paymentCollected }

// Payment returns the recorded payment details, nil before completion.
func (a *DeliveryAssignment) Payment() *PaymentDetails {
	if a.payment == nil {
		return nil
	}
	v := *a.payment
	return &v
}

// Driver returns the locked driver identity, nil before identification.
func (a *DeliveryAssignment) Driver() *DriverIdentity {
	if a.driver == nil {
		return nil
	}
	v := *a.driver
	return &v
}

// HasDriver reports whether a driver identity is recorded.
func (a *DeliveryAssignment) HasDriver() bool {
	return a.driver != nil
}

// CancellationReason returns the reason of the last cancelled attempt.
func (a *DeliveryAssignment) CancellationReason() string { return a.cancellationReason }

// GuardEntry refuses the collection workflow for codes that are already
// consumed or expired. It runs before the first stage is ever shown, not
// only at submission, because a code can be scanned again after the
// assignment completed.
//
// A used code without a collected payment can only come from the expiry
// job, so it is reported as expired rather than processed.
func (a *DeliveryAssignment) GuardEntry(now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.paymentCollected {
		return errs.NewConflictErrorWithCause("accessCode", ErrAlreadyProcessed)
	}
	if a.code.IsUsed() || a.code.IsExpired(now) {
		return errs.NewConflictErrorWithCause("accessCode", ErrAccessCodeExpired)
	}
	return nil
}

// actingStage walks the session's collection workflow from its entry
// stage to Acting. A session without a locked driver identity enters at
// IdentifyDriver and cannot reach Acting, so cancel and complete are
// refused until the identify step ran.
func (a *DeliveryAssignment) actingStage() (collection.Stage, error) {
	acting, err := collection.EntryStage(a.HasDriver()).ToActing()
	if err != nil {
		return collection.Unknown,
			errs.NewValueIsRequiredErrorWithCause("driverIdentity", ErrDriverIdentityMissing)
	}
	return acting, nil
}

// LockDriverIdentity records the driver's identity, write-once, and
// advances the session to the review stage.
// Re-submitting the identical pair is a no-op so a retried identify step
// short-circuits; any differing value is a conflict and the stored pair
// stays untouched.
func (a *DeliveryAssignment) LockDriverIdentity(identity DriverIdentity, now time.Time) error {
	if err := a.GuardEntry(now); err != nil {
		return err
	}
	if err := identity.Validate(); err != nil {
		return err
	}

	if a.driver != nil {
		if a.driver.IsEqual(identity) {
			return nil
		}
		return errs.NewConflictErrorWithCause("driverIdentity", ErrDriverIdentityLocked)
	}

	if _, err := collection.EntryStage(a.HasDriver()).ToReview(); err != nil {
		return err
	}

	a.driver = &identity
	return nil
}

// Cancel records a failed delivery attempt: status stays NotDelivered
// and the reason is stored (a placeholder when the driver gives none).
// The access code is NOT consumed; the same code supports a later retry.
func (a *DeliveryAssignment) Cancel(reason string, now time.Time) error {
	if err := a.GuardEntry(now); err != nil {
		return err
	}
	acting, err := a.actingStage()
	if err != nil {
		return err
	}
	if _, err := acting.ToCancelled(); err != nil {
		return err
	}

	if reason == "" {
		reason = defaultCancellationReason
	}

	a.deliveryStatus = NotDelivered
	a.cancellationReason = reason
	return nil
}

// CompletePayment records the collected payment and consumes the access
// code in the same state change: payment facts, delivered status and
// code consumption are all-or-nothing.
func (a *DeliveryAssignment) CompletePayment(payment PaymentDetails, now time.Time) error {
	if err := a.GuardEntry(now); err != nil {
		return err
	}
	acting, err := a.actingStage()
	if err != nil {
		return err
	}
	if _, err := acting.ToDeliveredAndPaid(); err != nil {
		return err
	}
	if err := payment.Validate(); err != nil {
		return err
	}

	a.payment = &payment
	a.paymentCollected = true
	a.deliveryStatus = Delivered
	a.code.consume()
	return nil
}
