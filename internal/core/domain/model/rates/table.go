package rates

import (
	"errors"
	"fmt"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not
// created through the NewTable factory method.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table maps each route to its ordered list of weight brackets. It is
// static configuration: built once, immutable at runtime.
//
// NewTable rejects a route whose bracket list contains no automatically
// resolvable bracket. An unpriceable route is a configuration defect and
// must fail at startup, not degrade at request time.
type Table struct {
	brackets map[Route][]Bracket

	isConstructed bool
}

// NewTable creates a validated Table from a route-keyed bracket mapping.
//
// Rules enforced:
//   - every route key must be a known route
//   - every bracket must be constructed via NewBracket
//   - every route must carry at least one non-manual bracket
func NewTable(brackets map[Route][]Bracket) (Table, error) {
	if len(brackets) == 0 {
		return Table{}, errs.NewValueIsRequiredError("brackets")
	}

	copied := make(map[Route][]Bracket, len(brackets))
	for route, list := range brackets {
		if err := route.Validate(); err != nil {
			return Table{}, err
		}

		resolvable := 0
		for _, b := range list {
			if err := b.Validate(); err != nil {
				return Table{}, err
			}
			if !b.IsManualOnly() {
				resolvable++
			}
		}
		if resolvable == 0 {
			return Table{}, errs.NewValueIsInvalidErrorWithCause("brackets",
				fmt.Errorf("route %s has no automatically resolvable bracket", route))
		}

		copied[route] = append([]Bracket(nil), list...)
	}

	return Table{brackets: copied, isConstructed: true}, nil
}

// Validate ensures the Table was created via NewTable.
func (t Table) Validate() error {
	if !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// Brackets returns the bracket list configured for the route. The second
// return value reports whether the route is present in the table.
func (t Table) Brackets(route Route) ([]Bracket, bool) {
	list, ok := t.brackets[route]
	if !ok {
		return nil, false
	}
	return append([]Bracket(nil), list...), true
}

// closedBelow builds an inclusive upper bound one gram below the next
// bracket's lower bound. Adjacent closed brackets must be contiguous on
// the gram fixed point or fractional weights fall between them.
func closedBelow(nextMinKg float64) *kernel.Weight {
	w := kernel.NewWeightFromGrams(kernel.NewWeightFromKilograms(nextMinKg).Grams() - 1)
	return &w
}

// DefaultTable returns the built-in bracket configuration for the two
// supported lanes. Each closed bracket runs up to one gram below its
// neighbour's lower bound, so every weight from the lowest minimum
// upward lands in exactly one range.
//
// UAE_TO_PH deliberately carries two overlapping open-ended thresholds
// ("200+ KG" and "1000+ KG"); the resolver tests the higher threshold
// first.
func DefaultTable() Table {
	table, err := NewTable(map[Route][]Bracket{
		RoutePHToUAE: {
			MustNewBracket("1-15 KG", kernel.NewWeightFromKilograms(1), closedBelow(16), kernel.MustParseMoney("39.00"), false),
			MustNewBracket("16-30 KG", kernel.NewWeightFromKilograms(16), closedBelow(31), kernel.MustParseMoney("37.00"), false),
			MustNewBracket("31-70 KG", kernel.NewWeightFromKilograms(31), closedBelow(71), kernel.MustParseMoney("35.00"), false),
			MustNewBracket("71-199 KG", kernel.NewWeightFromKilograms(71), closedBelow(200), kernel.MustParseMoney("33.00"), false),
			MustNewBracket("200+ KG", kernel.NewWeightFromKilograms(200), nil, kernel.MustParseMoney("30.00"), false),
			MustNewBracket("SPECIAL CARGO", kernel.NewWeightFromKilograms(1), nil, kernel.MustParseMoney("25.00"), true),
		},
		RouteUAEToPH: {
			MustNewBracket("1-49 KG", kernel.NewWeightFromKilograms(1), closedBelow(50), kernel.MustParseMoney("16.00"), false),
			MustNewBracket("50-99 KG", kernel.NewWeightFromKilograms(50), closedBelow(100), kernel.MustParseMoney("14.00"), false),
			MustNewBracket("100-199 KG", kernel.NewWeightFromKilograms(100), closedBelow(200), kernel.MustParseMoney("12.00"), false),
			MustNewBracket("200+ KG", kernel.NewWeightFromKilograms(200), nil, kernel.MustParseMoney("10.00"), false),
			MustNewBracket("1000+ KG", kernel.NewWeightFromKilograms(1000), nil, kernel.MustParseMoney("8.00"), false),
		},
	})
	if err != nil {
		// Static configuration above; unreachable for a correct build.
		panic(err)
	}
	return table
}
