package queries

import (
	"errors"
	"time"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/guard"
)

var ErrGetPendingCollectionsQueryIsNotConstructed = errors.New(
	"GetPendingCollectionsQuery must be created via NewGetPendingCollectionsQuery constructor",
)

// GetPendingCollectionsQuery retrieves all assignments whose payment has
// not been collected yet. Backs the back-office dashboard of deliveries
// in flight.
type GetPendingCollectionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCollectionsQuery creates a query to retrieve pending
// collections. This is a parameterless query.
func NewGetPendingCollectionsQuery() GetPendingCollectionsQuery {
	return GetPendingCollectionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingCollectionsQueryIsNotConstructed if validation fails.
func (q GetPendingCollectionsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCollectionsQueryIsNotConstructed)
}

// GetPendingCollectionsQueryResponse represents one undelivered
// assignment on the dashboard.
type GetPendingCollectionsQueryResponse struct {
	AssignmentID   kernel.UUID
	TrackingNumber string
	Amount         kernel.Money
	AccessCode     string
	CodeExpiresAt  time.Time
	DriverName     string
	DriverPhone    string

	// CancellationReason is the reason of the last failed attempt, empty
	// when no attempt was cancelled yet.
	CancellationReason string
}
