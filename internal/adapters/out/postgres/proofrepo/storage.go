// Package proofrepo stores payment proof images in postgres. Images are
// small phone snapshots of transfer receipts, so a bytea column keeps
// them transactional with the rest of the data without an object store.
package proofrepo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"cargopay/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProofDTO represents the database structure for a stored proof image.
type ProofDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContentType string
	Content     []byte `gorm:"type:bytea"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for proof images.
func (ProofDTO) TableName() string {
	return "payment_proofs"
}

// GormProofStorage implements ports.ProofStorage on a postgres table.
type GormProofStorage struct {
	db *gorm.DB
}

// NewGormProofStorage creates a new GORM proof storage.
func NewGormProofStorage(db *gorm.DB) *GormProofStorage {
	return &GormProofStorage{db: db}
}

// Store saves the image content and returns its reference, the row's
// UUID in string form.
func (s *GormProofStorage) Store(ctx context.Context, contentType string, content io.Reader) (string, error) {
	if content == nil {
		return "", errs.NewValueIsRequiredError("content")
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errs.NewValueIsRequiredError("content")
	}

	dto := ProofDTO{
		ID:          uuid.New(),
		ContentType: contentType,
		Content:     data,
		CreatedAt:   time.Now().UTC(),
	}

	if err = s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return "", err
	}

	return dto.ID.String(), nil
}

// Load streams back a stored image by reference.
func (s *GormProofStorage) Load(ctx context.Context, ref string) (string, io.ReadCloser, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return "", nil, errs.NewObjectNotFoundErrorWithCause("proofRef", ref, err)
	}

	var dto ProofDTO
	if err = s.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errs.NewObjectNotFoundError("proofRef", ref)
		}
		return "", nil, err
	}

	return dto.ContentType, io.NopCloser(bytes.NewReader(dto.Content)), nil
}
