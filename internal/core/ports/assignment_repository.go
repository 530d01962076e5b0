package ports

import (
	"context"
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
//
// The mutating methods carry compare-and-set semantics: SaveDriverIdentity
// and SaveOutcome must apply only against the stored state they guard
// (an unset driver pair, an unconsumed code) and return
// errs.ConflictError when a concurrent writer got there first. The
// single-use and write-once invariants hold at the storage level, not
// just in memory.
type AssignmentRepository interface {
	// Add persists a new delivery assignment to storage.
	Add(ctx context.Context, aggregate *assignment.DeliveryAssignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.DeliveryAssignment, error)

	// GetByAccessCode retrieves the assignment gated by the code value.
	// Returns errs.ObjectNotFoundError for an unknown code; callers must
	// not reveal whether a code ever existed.
	GetByAccessCode(ctx context.Context, code string) (*assignment.DeliveryAssignment, error)

	// GetByVerificationID retrieves the assignment created for a
	// completed verification record, if any.
	GetByVerificationID(ctx context.Context, verificationID kernel.UUID) (*assignment.DeliveryAssignment, error)

	// GetAllPending retrieves assignments whose payment is not collected
	// and whose code has not expired at now.
	GetAllPending(ctx context.Context, now time.Time) ([]*assignment.DeliveryAssignment, error)

	// SaveDriverIdentity persists the aggregate's locked driver identity.
	// Guarded: writes only when the stored pair is still unset or equals
	// the aggregate's pair; otherwise returns errs.ConflictError.
	SaveDriverIdentity(ctx context.Context, aggregate *assignment.DeliveryAssignment) error

	// SaveOutcome persists a cancellation or a completed payment.
	// Guarded: writes only while the stored code is unconsumed; a
	// concurrent completion surfaces as errs.ConflictError.
	SaveOutcome(ctx context.Context, aggregate *assignment.DeliveryAssignment) error

	// ExpireCodes marks as used every unconsumed code past its expiry at
	// now and returns how many codes were invalidated.
	ExpireCodes(ctx context.Context, now time.Time) (int64, error)
}
