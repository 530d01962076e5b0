package commands

import (
	"context"
	"time"
)

// ExpireAccessCodesCommandHandler invalidates access codes past their
// expiry so stale links stop admitting drivers. Consumed codes are never
// touched.
type ExpireAccessCodesCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewExpireAccessCodesCommandHandler creates a handler for the code
// expiry batch operation.
func NewExpireAccessCodesCommandHandler(uowFactory AssignmentUoWFactory) ExpireAccessCodesCommandHandler {
	return ExpireAccessCodesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every stale code and returns how many were invalidated.
func (h ExpireAccessCodesCommandHandler) Handle(ctx context.Context, command ExpireAccessCodesCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.AssignmentRepository().ExpireCodes(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
