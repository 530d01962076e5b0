// Package collection models the payment-collection workflow a driver
// walks through on a code-gated page: identify, review, act, and either
// cancel or complete with payment.
package collection

import (
	"fmt"

	"cargopay/internal/pkg/errs"
)

// Stage represents the driver's position in the collection workflow.
//
// Stage transitions:
//
//	IdentifyDriver ──> Review ──> Acting ──┬──> Cancelled
//	                                       └──> DeliveredAndPaid
//
// A session for an assignment with a locked driver identity enters at
// Review directly. Cancelled is not terminal for the access code: a new
// session on the same code starts over at its entry stage.
// DeliveredAndPaid is terminal and consumes the code.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	Unknown Stage = iota

	// IdentifyDriver collects the driver's name and phone.
	IdentifyDriver

	// Review shows the assignment facts before any action.
	Review

	// Acting is where the driver chooses to cancel or deliver.
	Acting

	// Cancelled records a failed attempt; the code stays valid.
	Cancelled

	// DeliveredAndPaid is the terminal paid state.
	DeliveredAndPaid
)

// getStageStrings returns the string representation of every stage.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:          "Unknown",
		IdentifyDriver:   "IdentifyDriver",
		Review:           "Review",
		Acting:           "Acting",
		Cancelled:        "Cancelled",
		DeliveredAndPaid: "DeliveredAndPaid",
	}
}

// Validate checks if the Stage value is valid.
func (s Stage) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	if _, ok := getStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// EntryStage returns where a fresh session starts: Review when a driver
// identity is already locked (the identify step short-circuits and the
// stored identity is shown read-only), IdentifyDriver otherwise.
func EntryStage(hasDriver bool) Stage {
	if hasDriver {
		return Review
	}
	return IdentifyDriver
}

// ToReview transitions from IdentifyDriver once the identity persisted.
// Review re-entry is allowed so a reloaded page lands where it was.
func (s Stage) ToReview() (Stage, error) {
	if s != IdentifyDriver && s != Review {
		return 0, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%s cannot move to review", s))
	}
	return Review, nil
}

// ToActing transitions from Review. Pure navigation, no side effects.
func (s Stage) ToActing() (Stage, error) {
	if s != Review && s != Acting {
		return 0, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%s cannot move to acting", s))
	}
	return Acting, nil
}

// ToCancelled transitions from Acting when the driver chose to cancel.
func (s Stage) ToCancelled() (Stage, error) {
	if s != Acting {
		return 0, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%s cannot be cancelled", s))
	}
	return Cancelled, nil
}

// ToDeliveredAndPaid transitions from Acting when the driver chose to
// deliver and the payment preconditions were met.
func (s Stage) ToDeliveredAndPaid() (Stage, error) {
	if s != Acting {
		return 0, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%s cannot complete payment", s))
	}
	return DeliveredAndPaid, nil
}
