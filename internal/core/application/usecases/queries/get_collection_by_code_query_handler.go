package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cargopay/internal/core/domain/model/collection"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCollectionByCodeQueryHandler resolves an access code to the
// collection page facts. It reads raw rows; the workflow mutations go
// through the command handlers.
type GetCollectionByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetCollectionByCodeQueryHandler creates a handler for access code
// lookups. Requires a GORM database connection for query execution.
func NewGetCollectionByCodeQueryHandler(db *gorm.DB) GetCollectionByCodeQueryHandler {
	return GetCollectionByCodeQueryHandler{db: db}
}

// Handle executes the lookup. An unknown code returns
// errs.ObjectNotFoundError; callers must not reveal whether the code
// ever existed.
func (h GetCollectionByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionByCodeQuery,
) (GetCollectionByCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCollectionByCodeQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.verification_id,
			a.amount,
			a.code_expires_at,
			a.code_used,
			a.delivered,
			a.payment_collected,
			a.payment_method,
			a.payment_reference,
			a.payment_proof_ref,
			a.payment_confirmed_by,
			a.driver_name,
			a.driver_phone,
			a.cancellation_reason,
			v.invoice_number,
			v.tracking_number,
			v.box_count,
			v.receiver_address,
			v.receiver_phone
		FROM delivery_assignments a
		JOIN verification_records v ON v.id = a.verification_id
		WHERE a.access_code = ?
	`, query.AccessCode()).Row()

	var (
		id, verificationID uuid.UUID
		amountMinor        int64
		codeExpiresAt      time.Time
		codeUsed           bool
		resp               GetCollectionByCodeQueryResponse
	)

	err := row.Scan(
		&id,
		&verificationID,
		&amountMinor,
		&codeExpiresAt,
		&codeUsed,
		&resp.Delivered,
		&resp.PaymentCollected,
		&resp.PaymentMethod,
		&resp.PaymentReference,
		&resp.PaymentProofRef,
		&resp.PaymentConfirmedBy,
		&resp.DriverName,
		&resp.DriverPhone,
		&resp.CancellationReason,
		&resp.InvoiceNumber,
		&resp.TrackingNumber,
		&resp.BoxCount,
		&resp.ReceiverAddress,
		&resp.ReceiverPhone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCollectionByCodeQueryResponse{},
			errs.NewObjectNotFoundError("accessCode", query.AccessCode())
	}
	if err != nil {
		return GetCollectionByCodeQueryResponse{}, err
	}

	assignmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCollectionByCodeQueryResponse{}, err
	}
	resp.AssignmentID = assignmentID

	recordID, err := kernel.UUIDFromBytes(verificationID[:])
	if err != nil {
		return GetCollectionByCodeQueryResponse{}, err
	}
	resp.VerificationID = recordID

	amount, err := kernel.NewMoneyFromMinorUnits(amountMinor)
	if err != nil {
		return GetCollectionByCodeQueryResponse{}, err
	}
	resp.Amount = amount
	resp.CodeExpiresAt = codeExpiresAt
	resp.HasDriver = resp.DriverName != "" && resp.DriverPhone != ""

	// A used code without a collected payment was invalidated by the
	// expiry job; it renders as expired, not processed.
	now := time.Now().UTC()
	resp.AlreadyProcessed = resp.PaymentCollected
	resp.Expired = !resp.AlreadyProcessed && (codeUsed || now.After(codeExpiresAt))
	resp.EntryStage = collection.EntryStage(resp.HasDriver)

	return resp, nil
}
