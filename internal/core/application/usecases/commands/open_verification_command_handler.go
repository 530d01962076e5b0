package commands

import (
	"context"
	"errors"

	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/pkg/errs"
)

// ErrVerificationAlreadyOpened is returned when a shipment request
// already carries a verification record. One record per request.
var ErrVerificationAlreadyOpened = errors.New("verification already opened for request")

// OpenVerificationCommandHandler handles the business logic for opening
// a verification record. Exactly one record may exist per shipment
// request; a second open for the same request is rejected.
type OpenVerificationCommandHandler struct {
	uowFactory VerificationUoWFactory
	pricer     verification.Pricer
}

// NewOpenVerificationCommandHandler creates a handler for opening
// verification records. Requires a VerificationUoWFactory for
// transactional persistence and a Pricer for the initial rate
// resolution.
func NewOpenVerificationCommandHandler(
	uowFactory VerificationUoWFactory,
	pricer verification.Pricer,
) OpenVerificationCommandHandler {
	return OpenVerificationCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the open command. Creates the draft record and, when
// initial measurements were supplied, derives the first chargeable
// weight and rate before persisting.
func (h OpenVerificationCommandHandler) Handle(ctx context.Context, command OpenVerificationCommand) error {
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

	_, err := repo.GetByRequestID(ctx, command.RequestID())
	if err == nil {
		return errs.NewConflictErrorWithCause("requestID", ErrVerificationAlreadyOpened)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	record, err := verification.NewVerificationRecord(
		command.VerificationID(), command.RequestID(), command.Route())
	if err != nil {
		return err
	}

	if command.ActualWeight().IsPositive() || command.VolumetricWeight().IsPositive() {
		input := verification.Input{
			Route:            command.Route(),
			ActualWeight:     command.ActualWeight(),
			VolumetricWeight: command.VolumetricWeight(),
		}
		if err = record.ApplyInput(input, h.pricer); err != nil {
			return err
		}
	}

	if err = repo.Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
