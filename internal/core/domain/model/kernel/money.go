package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"cargopay/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in the single
// billing currency, held as an integer count of minor units (2 fraction
// digits). All arithmetic and comparisons are exact; the value never
// passes through binary floating point.
//
// The zero value is a valid zero amount.
//
// Example usage:
//
//	rate, err := kernel.ParseMoney("39.00")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(rate.String()) // "39.00"
type Money struct {
	minorUnits int64
}

// minorUnitsPerMajor is the number of minor units in one major unit of
// the billing currency (2 fraction digits).
const minorUnitsPerMajor = 100

// NewMoneyFromMinorUnits creates a Money from a raw minor-unit count.
// Negative amounts are invalid for this domain (rates and billable
// totals are never negative).
func NewMoneyFromMinorUnits(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d minor units is negative", minorUnits))
	}
	return Money{minorUnits: minorUnits}, nil
}

// ParseMoney parses a decimal string such as "39", "39.5" or "39.00"
// into a Money. At most two fraction digits are accepted; anything finer
// would silently lose precision and is rejected instead.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	whole, frac, _ := strings.Cut(s, ".")
	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	if major < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%q is negative", s))
	}

	var minor int64
	if frac != "" {
		if len(frac) > 2 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
				fmt.Errorf("%q has more than 2 fraction digits", s))
		}
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
		}
		if len(frac) == 1 {
			minor *= 10
		}
	}

	return Money{minorUnits: major*minorUnitsPerMajor + minor}, nil
}

// MustParseMoney parses a decimal string and panics on failure.
// Intended for static configuration such as the built-in rate tables.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MinorUnits returns the raw minor-unit count.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.minorUnits > 0
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits
}

// MulPerKg treats the amount as a per-kilogram rate and multiplies it by
// the given weight, rounding half-up at the final step only. This is the
// single place where billing totals are computed.
func (m Money) MulPerKg(w Weight) Money {
	// minor units * grams / grams-per-kg, rounded half-up
	product := m.minorUnits * w.Grams()
	return Money{minorUnits: (product + gramsPerKilogram/2) / gramsPerKilogram}
}

// String formats the amount with exactly two fraction digits, e.g. "39.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minorUnits/minorUnitsPerMajor, m.minorUnits%minorUnitsPerMajor)
}
