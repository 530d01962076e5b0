package assignment_test

import (
	"testing"
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/collection"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestAssignment(t *testing.T) *assignment.DeliveryAssignment {
	t.Helper()

	code, err := assignment.NewAccessCode(fixedNow, 72*time.Hour)
	require.NoError(t, err)

	a, err := assignment.NewDeliveryAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.MustParseMoney("390.00"), code)
	require.NoError(t, err)
	return a
}

func testDriver(t *testing.T) assignment.DriverIdentity {
	t.Helper()

	driver, err := assignment.NewDriverIdentity("Ahmed K.", "+971509876543")
	require.NoError(t, err)
	return driver
}

func cashPayment(t *testing.T) assignment.PaymentDetails {
	t.Helper()

	payment, err := assignment.NewPaymentDetails(assignment.PaymentMethodCash, "", "", "")
	require.NoError(t, err)
	return payment
}

func TestNewDeliveryAssignment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.Validate())
		assert.Equal(t, assignment.NotDelivered, a.DeliveryStatus())
		assert.False(t, a.PaymentCollected())
		assert.False(t, a.HasDriver())
		assert.Nil(t, a.Payment())
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		code, err := assignment.NewAccessCode(fixedNow, time.Hour)
		require.NoError(t, err)

		_, err = assignment.NewDeliveryAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.Money{}, code)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed code is rejected", func(t *testing.T) {
		_, err := assignment.NewDeliveryAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.MustParseMoney("10.00"), assignment.AccessCode{})

		require.ErrorIs(t, err, assignment.ErrAccessCodeIsNotConstructed)
	})
}

func TestDeliveryAssignment_GuardEntry(t *testing.T) {
	t.Run("fresh code passes", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.GuardEntry(fixedNow))
	})

	t.Run("expired code", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.GuardEntry(fixedNow.Add(73 * time.Hour))

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, assignment.ErrAccessCodeExpired)
	})

	t.Run("used code", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))
		require.NoError(t, a.CompletePayment(cashPayment(t), fixedNow))

		err := a.GuardEntry(fixedNow)

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, assignment.ErrAlreadyProcessed)
	})

	t.Run("used wins over expired", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))
		require.NoError(t, a.CompletePayment(cashPayment(t), fixedNow))

		err := a.GuardEntry(fixedNow.Add(100 * time.Hour))

		require.ErrorIs(t, err, assignment.ErrAlreadyProcessed)
	})
}

func TestDeliveryAssignment_LockDriverIdentity(t *testing.T) {
	t.Run("first write locks", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		require.True(t, a.HasDriver())
		assert.Equal(t, "Ahmed K.", a.Driver().Name())
		assert.Equal(t, "+971509876543", a.Driver().Phone())
	})

	t.Run("identical resubmission is a no-op", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))
	})

	t.Run("differing identity conflicts and keeps the original", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		other, err := assignment.NewDriverIdentity("Someone Else", "+971500000000")
		require.NoError(t, err)

		err = a.LockDriverIdentity(other, fixedNow)

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, assignment.ErrDriverIdentityLocked)
		assert.Equal(t, "Ahmed K.", a.Driver().Name())
	})
}

func TestDeliveryAssignment_Cancel(t *testing.T) {
	t.Run("requires a locked driver", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.Cancel("receiver unreachable", fixedNow)

		require.ErrorIs(t, err, assignment.ErrDriverIdentityMissing)
	})

	t.Run("stores the reason and keeps the code alive", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		require.NoError(t, a.Cancel("receiver unreachable", fixedNow))

		assert.Equal(t, "receiver unreachable", a.CancellationReason())
		assert.Equal(t, assignment.NotDelivered, a.DeliveryStatus())
		assert.False(t, a.PaymentCollected())
		assert.False(t, a.AccessCode().IsUsed())

		// A retry on the same code is still possible.
		require.NoError(t, a.GuardEntry(fixedNow))
	})

	t.Run("empty reason falls back to a placeholder", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		require.NoError(t, a.Cancel("", fixedNow))

		assert.Equal(t, "No reason provided", a.CancellationReason())
	})
}

func TestDeliveryAssignment_CompletePayment(t *testing.T) {
	t.Run("requires a locked driver", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.CompletePayment(cashPayment(t), fixedNow)

		require.ErrorIs(t, err, assignment.ErrDriverIdentityMissing)
	})

	t.Run("records payment, delivers and consumes the code together", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		require.NoError(t, a.CompletePayment(cashPayment(t), fixedNow))

		assert.True(t, a.PaymentCollected())
		assert.Equal(t, assignment.Delivered, a.DeliveryStatus())
		assert.True(t, a.AccessCode().IsUsed())
		require.NotNil(t, a.Payment())
		assert.Equal(t, assignment.PaymentMethodCash, a.Payment().Method())
	})

	t.Run("second completion is rejected", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))
		require.NoError(t, a.CompletePayment(cashPayment(t), fixedNow))

		err := a.CompletePayment(cashPayment(t), fixedNow)

		require.ErrorIs(t, err, assignment.ErrAlreadyProcessed)
	})

	t.Run("unconstructed payment details are rejected", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))

		err := a.CompletePayment(assignment.PaymentDetails{}, fixedNow)

		require.ErrorIs(t, err, assignment.ErrPaymentDetailsAreNotConstructed)
		assert.False(t, a.PaymentCollected())
		assert.False(t, a.AccessCode().IsUsed())
	})
}

func TestDeliveryAssignment_FollowsCollectionStages(t *testing.T) {
	a := newTestAssignment(t)

	// A fresh session enters at the identify stage, which cannot reach
	// acting, so both terminal actions are refused.
	require.Equal(t, collection.IdentifyDriver, collection.EntryStage(a.HasDriver()))
	require.ErrorIs(t, a.Cancel("receiver unreachable", fixedNow), assignment.ErrDriverIdentityMissing)
	require.ErrorIs(t, a.CompletePayment(cashPayment(t), fixedNow), assignment.ErrDriverIdentityMissing)

	// Locking the identity moves the session to review, from where
	// acting and both terminal actions are reachable.
	require.NoError(t, a.LockDriverIdentity(testDriver(t), fixedNow))
	require.Equal(t, collection.Review, collection.EntryStage(a.HasDriver()))
	require.NoError(t, a.Cancel("receiver unreachable", fixedNow))

	// Cancelled is not terminal for the code: the next session re-enters
	// at review and can still complete.
	require.NoError(t, a.GuardEntry(fixedNow))
	require.Equal(t, collection.Review, collection.EntryStage(a.HasDriver()))
	require.NoError(t, a.CompletePayment(cashPayment(t), fixedNow))
	assert.True(t, a.PaymentCollected())
}

func TestRestoreDeliveryAssignment(t *testing.T) {
	driver := testDriver(t)
	payment := cashPayment(t)
	code, err := assignment.RestoreAccessCode("ABCD2345", fixedNow.Add(time.Hour), true)
	require.NoError(t, err)

	restored, err := assignment.RestoreDeliveryAssignment(assignment.RestoreParams{
		ID:               kernel.NewUUID(),
		VerificationID:   kernel.NewUUID(),
		Amount:           kernel.MustParseMoney("180.00"),
		Code:             code,
		DeliveryStatus:   assignment.Delivered,
		PaymentCollected: true,
		Payment:          &payment,
		Driver:           &driver,
	})

	require.NoError(t, err)
	require.NoError(t, restored.Validate())
	assert.True(t, restored.PaymentCollected())
	assert.True(t, restored.AccessCode().IsUsed())
	assert.Equal(t, "ABCD2345", restored.AccessCode().Value())
	require.ErrorIs(t, restored.GuardEntry(fixedNow), assignment.ErrAlreadyProcessed)
}

func TestDeliveryAssignment_Validate_ZeroValue(t *testing.T) {
	var a assignment.DeliveryAssignment

	require.ErrorIs(t, a.Validate(), assignment.ErrDeliveryAssignmentIsNotConstructed)
}
