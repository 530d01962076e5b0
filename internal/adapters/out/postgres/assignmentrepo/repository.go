package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
//
// SaveDriverIdentity and SaveOutcome run compare-and-set updates: the
// WHERE clause re-checks the stored state the aggregate mutation assumed
// and zero affected rows surfaces as a conflict. Two drivers racing over
// one access code lose deterministically here, whatever their in-memory
// aggregates said.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery assignment to the database. The unique index
// on verification_id keeps one assignment per verification.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.DeliveryAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("verificationID", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.DeliveryAssignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAssignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAccessCode retrieves the assignment gated by the code value.
func (r *GormAssignmentRepository) GetByAccessCode(ctx context.Context, code string) (*assignment.DeliveryAssignment, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("accessCode")
	}

	var dto DeliveryAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "access_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accessCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByVerificationID retrieves the assignment created for a completed
// verification record.
func (r *GormAssignmentRepository) GetByVerificationID(ctx context.Context, verificationID kernel.UUID) (*assignment.DeliveryAssignment, error) {
	if err := verificationID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "verification_id = ?", verificationID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAssignment", verificationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves assignments whose payment is not collected and
// whose code is still live at now.
func (r *GormAssignmentRepository) GetAllPending(ctx context.Context, now time.Time) ([]*assignment.DeliveryAssignment, error) {
	var dtos []DeliveryAssignmentDTO
	err := r.db.WithContext(ctx).
		Where("payment_collected = false AND code_used = false AND code_expires_at > ?", now).
		Order("code_expires_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pending := make([]*assignment.DeliveryAssignment, 0, len(dtos))
	for _, dto := range dtos {
		a, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		pending = append(pending, a)
	}

	return pending, nil
}

// SaveDriverIdentity persists the locked driver identity. The update
// applies only while the stored pair is unset or already equals the
// aggregate's pair, so the first writer wins and a retry of the same
// pair stays a no-op.
func (r *GormAssignmentRepository) SaveDriverIdentity(ctx context.Context, aggregate *assignment.DeliveryAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	driver := aggregate.Driver()
	if driver == nil {
		return errs.NewValueIsRequiredError("driverIdentity")
	}

	result := r.db.WithContext(ctx).Model(&DeliveryAssignmentDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Where("(driver_name = '' AND driver_phone = '') OR (driver_name = ? AND driver_phone = ?)",
			driver.Name(), driver.Phone()).
		Updates(map[string]any{
			"driver_name":  driver.Name(),
			"driver_phone": driver.Phone(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("driverIdentity", assignment.ErrDriverIdentityLocked)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// SaveOutcome persists a cancellation or a completed payment. The update
// applies only while the stored code is unconsumed; losing the race to a
// concurrent completion surfaces as a conflict.
func (r *GormAssignmentRepository) SaveOutcome(ctx context.Context, aggregate *assignment.DeliveryAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryAssignmentDTO{}).
		Where("id = ? AND code_used = false AND payment_collected = false", dto.ID).
		Updates(map[string]any{
			"code_used":            dto.CodeUsed,
			"delivered":            dto.Delivered,
			"payment_collected":    dto.PaymentCollected,
			"payment_method":       dto.PaymentMethod,
			"payment_reference":    dto.PaymentReference,
			"payment_proof_ref":    dto.PaymentProofRef,
			"payment_confirmed_by": dto.PaymentConfirmedBy,
			"cancellation_reason":  dto.CancellationReason,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("accessCode", assignment.ErrAlreadyProcessed)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExpireCodes marks every unconsumed code past its expiry as used so
// stale links stop admitting drivers. Collected assignments are never
// touched.
func (r *GormAssignmentRepository) ExpireCodes(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryAssignmentDTO{}).
		Where("code_used = false AND payment_collected = false AND code_expires_at <= ?", now).
		Update("code_used", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
