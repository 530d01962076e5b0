package commands

import (
	"context"
	"time"
)

// CancelDeliveryCommandHandler records a failed delivery attempt:
// delivery stays not-delivered, the reason is stored and the access code
// remains valid for a retry.
type CancelDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery
// cancellation.
func NewCancelDeliveryCommandHandler(uowFactory AssignmentUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the assignment by access code, cancels the attempt and
// persists the outcome.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, command CancelDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()

	aggregate, err := repo.GetByAccessCode(ctx, command.AccessCode())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.SaveOutcome(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
