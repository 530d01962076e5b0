package queries

import (
	"context"
	"time"

	"cargopay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingCollectionsQueryHandler retrieves assignments awaiting
// payment collection from the database. Consumed and expired codes are
// filtered out.
type GetPendingCollectionsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCollectionsQueryHandler creates a handler for pending
// collection queries. Requires a GORM database connection for query
// execution.
func NewGetPendingCollectionsQueryHandler(db *gorm.DB) GetPendingCollectionsQueryHandler {
	return GetPendingCollectionsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by code expiry so the
// most urgent collections come first.
func (h GetPendingCollectionsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCollectionsQuery,
) ([]GetPendingCollectionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]GetPendingCollectionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			v.tracking_number,
			a.amount,
			a.access_code,
			a.code_expires_at,
			a.driver_name,
			a.driver_phone,
			a.cancellation_reason
		FROM delivery_assignments a
		JOIN verification_records v ON v.id = a.verification_id
		WHERE a.payment_collected = false
		  AND a.code_used = false
		  AND a.code_expires_at > ?
		ORDER BY a.code_expires_at
	`, time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingCollectionsQueryResponse
		var id uuid.UUID
		var amountMinor int64

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&amountMinor,
			&resp.AccessCode,
			&resp.CodeExpiresAt,
			&resp.DriverName,
			&resp.DriverPhone,
			&resp.CancellationReason,
		)
		if err != nil {
			return nil, err
		}

		assignmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.AssignmentID = assignmentID

		amount, amountErr := kernel.NewMoneyFromMinorUnits(amountMinor)
		if amountErr != nil {
			return nil, amountErr
		}
		resp.Amount = amount

		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
