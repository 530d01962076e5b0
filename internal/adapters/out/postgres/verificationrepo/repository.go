package verificationrepo

import (
	"context"
	"errors"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVerificationRepository implements VerificationRepository using GORM.
type GormVerificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVerificationRepository creates a new GORM verification repository.
func NewGormVerificationRepository(db *gorm.DB, tracker aggregateTracker) *GormVerificationRepository {
	return &GormVerificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new verification record to the database. The unique index
// on request_id backs the one-record-per-request invariant at the
// storage level.
func (r *GormVerificationRepository) Add(ctx context.Context, aggregate *verification.VerificationRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("requestID", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing verification record to the database.
func (r *GormVerificationRepository) Update(ctx context.Context, aggregate *verification.VerificationRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") so false/zero derived fields overwrite stale values.
	result := r.db.WithContext(ctx).Model(&VerificationRecordDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a verification record by ID.
func (r *GormVerificationRepository) Get(ctx context.Context, id kernel.UUID) (*verification.VerificationRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VerificationRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("verificationRecord", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRequestID retrieves the record opened for a shipment request.
func (r *GormVerificationRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) (*verification.VerificationRecord, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dto VerificationRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "request_id = ?", requestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("verificationRecord", requestID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
