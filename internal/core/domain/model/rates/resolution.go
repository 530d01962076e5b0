package rates

import "cargopay/internal/core/domain/model/kernel"

// MatchKind distinguishes a confident bracket match from an edge-case
// fallback. Downstream auditing flags fallback-priced shipments.
type MatchKind int

const (
	// MatchNone means resolution produced no bracket at all: the route is
	// unknown or the weight is not positive.
	MatchNone MatchKind = iota

	// MatchExact means the weight fell inside a bracket's range.
	MatchExact

	// MatchFallback means no bracket contained the weight and the
	// resolver degraded to the best available bracket.
	MatchFallback
)

// String returns the human-readable name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "Exact"
	case MatchFallback:
		return "Fallback"
	default:
		return "None"
	}
}

// Resolution is the result of pricing a chargeable weight on a route.
// A zero Resolution (zero rate, empty label, MatchNone) is the total
// answer for unknown routes and non-positive weights.
type Resolution struct {
	RatePerKg    kernel.Money
	BracketLabel string
	Kind         MatchKind
}

// IsFallback reports whether the resolver used an edge-case fallback
// bracket rather than a direct range match.
func (r Resolution) IsFallback() bool {
	return r.Kind == MatchFallback
}
