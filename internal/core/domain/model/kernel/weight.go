package kernel

import (
	"fmt"
	"math"
)

// gramsPerKilogram converts between the kilogram figures operators enter
// and the gram fixed point the domain computes with.
const gramsPerKilogram = 1000

// Weight is a value object representing a shipment weight as an integer
// number of grams. Bracket membership and chargeable-weight comparisons
// are decided on this fixed point, never on floats.
//
// The zero value is a valid zero weight.
type Weight struct {
	grams int64
}

// NewWeightFromGrams creates a Weight from a raw gram count.
// Negative counts clamp to zero; the validation boundary for operator
// input lives in the transport layer, and the domain must degrade rather
// than propagate bad values.
func NewWeightFromGrams(grams int64) Weight {
	if grams < 0 {
		return Weight{}
	}
	return Weight{grams: grams}
}

// NewWeightFromKilograms converts a kilogram figure from operator input
// into a Weight, rounding to the nearest gram. Negative, NaN and
// infinite inputs clamp to zero.
func NewWeightFromKilograms(kg float64) Weight {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		return Weight{}
	}
	return Weight{grams: int64(math.Round(kg * gramsPerKilogram))}
}

// Grams returns the raw gram count.
func (w Weight) Grams() int64 {
	return w.grams
}

// Kilograms returns the weight as a kilogram figure for display only.
// Domain decisions never use this value.
func (w Weight) Kilograms() float64 {
	return float64(w.grams) / gramsPerKilogram
}

// IsZero reports whether the weight is exactly zero.
func (w Weight) IsZero() bool {
	return w.grams == 0
}

// IsPositive reports whether the weight is greater than zero.
func (w Weight) IsPositive() bool {
	return w.grams > 0
}

// Less reports whether w is strictly below other.
func (w Weight) Less(other Weight) bool {
	return w.grams < other.grams
}

// AtLeast reports whether w is greater than or equal to other.
func (w Weight) AtLeast(other Weight) bool {
	return w.grams >= other.grams
}

// AtMost reports whether w is less than or equal to other.
func (w Weight) AtMost(other Weight) bool {
	return w.grams <= other.grams
}

// Max returns the greater of two weights.
func (w Weight) Max(other Weight) Weight {
	if other.grams > w.grams {
		return other
	}
	return w
}

// String formats the weight as a kilogram figure, e.g. "10.500 kg".
func (w Weight) String() string {
	return fmt.Sprintf("%d.%03d kg", w.grams/gramsPerKilogram, w.grams%gramsPerKilogram)
}
