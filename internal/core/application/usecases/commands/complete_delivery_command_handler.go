package commands

import (
	"context"
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/ports"
)

// CompleteDeliveryResult reports the payment facts of an assignment
// after a completion attempt. AlreadyProcessed is true when the code was
// consumed before this submission; the recorded facts are returned and
// nothing is mutated, so a double-submitted form behaves idempotently.
type CompleteDeliveryResult struct {
	AlreadyProcessed bool
	Amount           kernel.Money
	Method           assignment.PaymentMethod
	Reference        string
	ProofRef         string
	ConfirmedBy      string
}

// CompleteDeliveryCommandHandler records the collected payment, marks
// the assignment delivered and consumes the access code in one
// transaction. The repository write is guarded against a concurrent
// completion of the same code.
type CompleteDeliveryCommandHandler struct {
	uowFactory   AssignmentUoWFactory
	proofStorage ports.ProofStorage
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion. Requires proof storage for bank-transfer evidence uploads.
func NewCompleteDeliveryCommandHandler(
	uowFactory AssignmentUoWFactory,
	proofStorage ports.ProofStorage,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory:   uowFactory,
		proofStorage: proofStorage,
	}
}

// Handle processes the completion command.
//
// When the assignment was already completed the recorded payment facts
// are returned with AlreadyProcessed set, without a second mutation.
// Otherwise the optional proof image is stored first, then payment
// details, delivered status and code consumption are persisted together.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CompleteDeliveryCommand,
) (CompleteDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return CompleteDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()

	aggregate, err := repo.GetByAccessCode(ctx, command.AccessCode())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}

	if aggregate.PaymentCollected() {
		return recordedResult(aggregate), nil
	}

	proofRef := ""
	if command.Proof() != nil {
		proofRef, err = h.proofStorage.Store(ctx, command.ProofContentType(), command.Proof())
		if err != nil {
			return CompleteDeliveryResult{}, err
		}
	}

	payment, err := assignment.NewPaymentDetails(
		command.Method(), command.Reference(), proofRef, command.ConfirmedBy())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = aggregate.CompletePayment(payment, time.Now().UTC()); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = repo.SaveOutcome(ctx, aggregate); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	result := recordedResult(aggregate)
	result.AlreadyProcessed = false
	return result, nil
}

func recordedResult(aggregate *assignment.DeliveryAssignment) CompleteDeliveryResult {
	result := CompleteDeliveryResult{
		AlreadyProcessed: true,
		Amount:           aggregate.Amount(),
	}
	if payment := aggregate.Payment(); payment != nil {
		result.Method = payment.Method()
		result.Reference = payment.Reference()
		result.ProofRef = payment.ProofRef()
		result.ConfirmedBy = payment.ConfirmedBy()
	}
	return result
}
