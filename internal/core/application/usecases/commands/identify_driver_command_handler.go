package commands

import (
	"context"
	"time"

	"cargopay/internal/core/domain/model/assignment"
)

// IdentifyDriverCommandHandler locks the collecting driver's identity on
// an assignment. The repository write is guarded so the write-once rule
// holds against concurrent submissions, not just in memory.
type IdentifyDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewIdentifyDriverCommandHandler creates a handler for driver
// identification.
func NewIdentifyDriverCommandHandler(uowFactory AssignmentUoWFactory) IdentifyDriverCommandHandler {
	return IdentifyDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the assignment by access code, locks the identity and
// persists it. A resubmission of the identical pair succeeds without a
// second write; a differing pair surfaces as a conflict.
func (h IdentifyDriverCommandHandler) Handle(ctx context.Context, command IdentifyDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	identity, err := assignment.NewDriverIdentity(command.DriverName(), command.DriverPhone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.LockDriverIdentity(identity, time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.SaveDriverIdentity(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
