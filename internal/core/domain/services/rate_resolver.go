package services

import (
	"sort"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
)

// RateResolver is a domain service that prices a chargeable weight
// against a route's bracket table.
//
// Resolution is total: for any known route with at least one non-manual
// bracket and any positive weight it returns a positive rate, degrading
// to a fallback bracket when no range contains the weight. It never
// returns an error; unknown routes and non-positive weights yield a zero
// Resolution with MatchNone.
//
// Selection order (the order matters because open-ended thresholds can
// be supersets of each other):
//  1. closed brackets, ascending by lower bound, first containing range
//  2. open-ended brackets, descending by lower bound, first reached threshold
//  3. fallback: the bracket with the globally lowest bound for weights
//     below every bracket, otherwise the highest-bound closed bracket
type RateResolver struct {
	table rates.Table
}

// NewRateResolver creates a resolver over the given rate table.
// The table must be constructed via rates.NewTable.
func NewRateResolver(table rates.Table) (RateResolver, error) {
	if err := table.Validate(); err != nil {
		return RateResolver{}, err
	}
	return RateResolver{table: table}, nil
}

// Resolve prices chargeable on route and reports how confident the match
// is via Resolution.Kind.
func (r RateResolver) Resolve(route rates.Route, chargeable kernel.Weight) rates.Resolution {
	list, ok := r.table.Brackets(route)
	if !ok || !chargeable.IsPositive() {
		return rates.Resolution{}
	}

	var closed, open []rates.Bracket
	for _, b := range list {
		if b.IsManualOnly() {
			continue
		}
		if b.IsOpenEnded() {
			open = append(open, b)
		} else {
			closed = append(closed, b)
		}
	}
	if len(closed) == 0 && len(open) == 0 {
		// NewTable forbids a route with only manual-only brackets.
		return rates.Resolution{}
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].MinWeight().Less(closed[j].MinWeight())
	})
	sort.SliceStable(open, func(i, j int) bool {
		return open[j].MinWeight().Less(open[i].MinWeight())
	})

	for _, b := range closed {
		if b.Contains(chargeable) {
			return exactMatch(b)
		}
	}
	for _, b := range open {
		if chargeable.AtLeast(b.MinWeight()) {
			return exactMatch(b)
		}
	}

	return fallbackMatch(chargeable, closed, open)
}

func exactMatch(b rates.Bracket) rates.Resolution {
	return rates.Resolution{
		RatePerKg:    b.RatePerKg(),
		BracketLabel: b.Label(),
		Kind:         rates.MatchExact,
	}
}

// fallbackMatch picks the best bracket for a weight no range contains.
// Below the lowest bound the lowest-bound bracket wins; otherwise the
// weight sits beyond the closed ranges and the highest-bound closed
// bracket wins.
func fallbackMatch(chargeable kernel.Weight, closed, open []rates.Bracket) rates.Resolution {
	lowest := lowestMinBracket(closed, open)
	if chargeable.Less(lowest.MinWeight()) || len(closed) == 0 {
		return rates.Resolution{
			RatePerKg:    lowest.RatePerKg(),
			BracketLabel: lowest.Label(),
			Kind:         rates.MatchFallback,
		}
	}

	highest := closed[len(closed)-1]
	return rates.Resolution{
		RatePerKg:    highest.RatePerKg(),
		BracketLabel: highest.Label(),
		Kind:         rates.MatchFallback,
	}
}

func lowestMinBracket(closed, open []rates.Bracket) rates.Bracket {
	var lowest *rates.Bracket
	for _, list := range [][]rates.Bracket{closed, open} {
		for i := range list {
			if lowest == nil || list[i].MinWeight().Less(lowest.MinWeight()) {
				lowest = &list[i]
			}
		}
	}
	return *lowest
}
