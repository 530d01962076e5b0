package commands

import (
	"context"

	"cargopay/internal/core/domain/model/verification"
)

// UpdateVerificationCommandHandler handles applying operator input to a
// draft verification record. Every application recomputes the derived
// billing fields through the aggregate.
type UpdateVerificationCommandHandler struct {
	uowFactory VerificationUoWFactory
	pricer     verification.Pricer
}

// NewUpdateVerificationCommandHandler creates a handler for verification
// updates.
func NewUpdateVerificationCommandHandler(
	uowFactory VerificationUoWFactory,
	pricer verification.Pricer,
) UpdateVerificationCommandHandler {
	return UpdateVerificationCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle loads the record, applies the input and persists the result.
// A completed record rejects the mutation with a conflict.
func (h UpdateVerificationCommandHandler) Handle(ctx context.Context, command UpdateVerificationCommand) error {
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

	if err = record.ApplyInput(command.Input(), h.pricer); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
