package commands

import (
	"context"
	"time"
)

// CompleteVerificationCommandHandler handles the draft→completed
// transition. All unmet conditions surface in one aggregate error so the
// operator fixes them in a single round trip.
type CompleteVerificationCommandHandler struct {
	uowFactory VerificationUoWFactory
}

// NewCompleteVerificationCommandHandler creates a handler for
// verification completion.
func NewCompleteVerificationCommandHandler(uowFactory VerificationUoWFactory) CompleteVerificationCommandHandler {
	return CompleteVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the record, completes it and persists the terminal state.
func (h CompleteVerificationCommandHandler) Handle(ctx context.Context, command CompleteVerificationCommand) error {
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

	repo := uow.VerificationRepository()

	record, err := repo.Get(ctx, command.VerificationID())
	if err != nil {
		return err
	}

	if err = record.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
