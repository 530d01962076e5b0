package commands

import (
	"context"
	"errors"
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/pkg/errs"
)

var (
	// ErrVerificationNotCompleted is returned when an assignment is
	// requested for a record that is still in draft.
	ErrVerificationNotCompleted = errors.New("verification record is not completed")

	// ErrAssignmentAlreadyExists is returned when the verification
	// already has a delivery assignment.
	ErrAssignmentAlreadyExists = errors.New("assignment already exists for verification")
)

// CreateAssignmentCommandHandler dispatches a delivery assignment from a
// completed verification: the billable amount is copied once and stays
// frozen, and a fresh single-use access code is minted.
type CreateAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment
// dispatch. Requires a UoWFactory because it reads the verification
// aggregate and writes the assignment aggregate in one transaction.
func NewCreateAssignmentCommandHandler(uowFactory UoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, command CreateAssignmentCommand) error {
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

	verificationRepo := uow.VerificationRepository()
	assignmentRepo := uow.AssignmentRepository()

	record, err := verificationRepo.Get(ctx, command.VerificationID())
	if err != nil {
		return err
	}
	if !record.IsCompleted() {
		return errs.NewConflictErrorWithCause("verificationID", ErrVerificationNotCompleted)
	}

	_, err = assignmentRepo.GetByVerificationID(ctx, command.VerificationID())
	if err == nil {
		return errs.NewConflictErrorWithCause("verificationID", ErrAssignmentAlreadyExists)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	code, err := assignment.NewAccessCode(time.Now().UTC(), command.CodeTTL())
	if err != nil {
		return err
	}

	aggregate, err := assignment.NewDeliveryAssignment(
		command.AssignmentID(), record.ID(), record.Amount(), code)
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
