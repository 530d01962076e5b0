package rates

import (
	"errors"
	"fmt"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"
)

// ErrBracketIsNotConstructed is returned when a Bracket instance was not
// created through the NewBracket factory method.
var ErrBracketIsNotConstructed = errors.New("Bracket must be created via NewBracket constructor")

// Bracket is a value object describing one weight range of a route's
// rate table and the per-kilogram rate billed inside it.
//
// A bracket is closed when it carries an upper bound and open-ended when
// it does not ("≥200 KG" style thresholds). Brackets flagged manual-only
// never take part in automatic resolution; operators apply them by hand
// for negotiated cargo.
type Bracket struct {
	label      string
	minWeight  kernel.Weight
	maxWeight  *kernel.Weight
	ratePerKg  kernel.Money
	manualOnly bool

	isConstructed bool
}

// NewBracket creates a validated Bracket.
//
// Rules enforced:
//   - label is required
//   - ratePerKg must be positive
//   - maxWeight, when present, must not be below minWeight
func NewBracket(
	label string,
	minWeight kernel.Weight,
	maxWeight *kernel.Weight,
	ratePerKg kernel.Money,
	manualOnly bool,
) (Bracket, error) {
	if label == "" {
		return Bracket{}, errs.NewValueIsRequiredError("label")
	}
	if !ratePerKg.IsPositive() {
		return Bracket{}, errs.NewValueIsInvalidErrorWithCause("ratePerKg",
			fmt.Errorf("rate %s is not positive", ratePerKg))
	}
	if maxWeight != nil && maxWeight.Less(minWeight) {
		return Bracket{}, errs.NewValueIsInvalidErrorWithCause("maxWeight",
			fmt.Errorf("upper bound %s is below lower bound %s", maxWeight, minWeight))
	}

	capped := maxWeight
	if capped != nil {
		v := *maxWeight
		capped = &v
	}

	return Bracket{
		label:         label,
		minWeight:     minWeight,
		maxWeight:     capped,
		ratePerKg:     ratePerKg,
		manualOnly:    manualOnly,
		isConstructed: true,
	}, nil
}

// MustNewBracket creates a Bracket and panics on validation failure.
// Intended for static table configuration only.
func MustNewBracket(
	label string,
	minWeight kernel.Weight,
	maxWeight *kernel.Weight,
	ratePerKg kernel.Money,
	manualOnly bool,
) Bracket {
	b, err := NewBracket(label, minWeight, maxWeight, ratePerKg, manualOnly)
	if err != nil {
		panic(err)
	}
	return b
}

// Validate ensures the Bracket was created via NewBracket.
func (b Bracket) Validate() error {
	if !b.isConstructed {
		return ErrBracketIsNotConstructed
	}
	return nil
}

// Label returns the human-readable bracket label, e.g. "1-15 KG".
func (b Bracket) Label() string {
	return b.label
}

// MinWeight returns the inclusive lower bound.
func (b Bracket) MinWeight() kernel.Weight {
	return b.minWeight
}

// MaxWeight returns the inclusive upper bound, or nil when the bracket
// is open-ended.
func (b Bracket) MaxWeight() *kernel.Weight {
	if b.maxWeight == nil {
		return nil
	}
	v := *b.maxWeight
	return &v
}

// RatePerKg returns the per-kilogram rate billed inside the bracket.
func (b Bracket) RatePerKg() kernel.Money {
	return b.ratePerKg
}

// IsManualOnly reports whether the bracket is excluded from automatic
// resolution.
func (b Bracket) IsManualOnly() bool {
	return b.manualOnly
}

// IsOpenEnded reports whether the bracket has no upper bound.
func (b Bracket) IsOpenEnded() bool {
	return b.maxWeight == nil
}

// Contains reports whether a weight falls inside the bracket's range.
func (b Bracket) Contains(w kernel.Weight) bool {
	if w.Less(b.minWeight) {
		return false
	}
	if b.maxWeight == nil {
		return true
	}
	return w.AtMost(*b.maxWeight)
}
