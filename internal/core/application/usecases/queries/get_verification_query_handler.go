package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVerificationQueryHandler retrieves one verification record row for
// display. Weight and money columns are stored as integers and surface
// as kernel value objects.
type GetVerificationQueryHandler struct {
	db *gorm.DB
}

// NewGetVerificationQueryHandler creates a handler for verification
// lookups. Requires a GORM database connection for query execution.
func NewGetVerificationQueryHandler(db *gorm.DB) GetVerificationQueryHandler {
	return GetVerificationQueryHandler{db: db}
}

// Handle executes the lookup. An unknown ID returns
// errs.ObjectNotFoundError.
func (h GetVerificationQueryHandler) Handle(
	ctx context.Context,
	query GetVerificationQuery,
) (GetVerificationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVerificationQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			invoice_number,
			tracking_number,
			route,
			actual_weight_grams,
			volumetric_weight_grams,
			chargeable_weight_grams,
			weight_type,
			rate_per_kg,
			bracket_label,
			rate_is_manual,
			amount,
			box_count,
			classification,
			cargo_service,
			receiver_address,
			receiver_phone,
			operator_name,
			sender_checked,
			receiver_checked,
			completed_at
		FROM verification_records
		WHERE id = ?
	`, query.VerificationID().Bytes()).Row()

	var (
		id, requestID                uuid.UUID
		actualGrams, volumetricGrams int64
		chargeableGrams              int64
		weightType                   int
		rateMinor, amountMinor       int64
		completedAt                  sql.NullTime
		resp                         GetVerificationQueryResponse
	)

	err := row.Scan(
		&id,
		&requestID,
		&resp.InvoiceNumber,
		&resp.TrackingNumber,
		&resp.Route,
		&actualGrams,
		&volumetricGrams,
		&chargeableGrams,
		&weightType,
		&rateMinor,
		&resp.BracketLabel,
		&resp.RateIsManual,
		&amountMinor,
		&resp.BoxCount,
		&resp.Classification,
		&resp.CargoService,
		&resp.ReceiverAddress,
		&resp.ReceiverPhone,
		&resp.OperatorName,
		&resp.SenderChecked,
		&resp.ReceiverChecked,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetVerificationQueryResponse{},
			errs.NewObjectNotFoundError("verificationRecord", query.VerificationID().String())
	}
	if err != nil {
		return GetVerificationQueryResponse{}, err
	}

	verificationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetVerificationQueryResponse{}, err
	}
	resp.VerificationID = verificationID

	reqID, err := kernel.UUIDFromBytes(requestID[:])
	if err != nil {
		return GetVerificationQueryResponse{}, err
	}
	resp.RequestID = reqID

	resp.ActualWeight = kernel.NewWeightFromGrams(actualGrams)
	resp.VolumetricWeight = kernel.NewWeightFromGrams(volumetricGrams)
	resp.ChargeableWeight = kernel.NewWeightFromGrams(chargeableGrams)
	resp.WeightType = verification.WeightType(weightType).String()

	ratePerKg, err := kernel.NewMoneyFromMinorUnits(rateMinor)
	if err != nil {
		return GetVerificationQueryResponse{}, err
	}
	resp.RatePerKg = ratePerKg

	amount, err := kernel.NewMoneyFromMinorUnits(amountMinor)
	if err != nil {
		return GetVerificationQueryResponse{}, err
	}
	resp.Amount = amount

	if completedAt.Valid {
		t := completedAt.Time.UTC()
		resp.CompletedAt = &t
		resp.IsCompleted = true
	}

	return resp, nil
}
