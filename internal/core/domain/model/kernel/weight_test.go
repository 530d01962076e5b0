package kernel_test

import (
	"math"
	"testing"

	"cargopay/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNewWeightFromKilograms(t *testing.T) {
	testCases := []struct {
		name  string
		kg    float64
		grams int64
	}{
		{name: "whole kilograms", kg: 10, grams: 10000},
		{name: "fractional kilograms", kg: 2.5, grams: 2500},
		{name: "rounds to nearest gram", kg: 0.0005, grams: 1},
		{name: "zero", kg: 0, grams: 0},
		{name: "negative clamps to zero", kg: -3, grams: 0},
		{name: "NaN clamps to zero", kg: math.NaN(), grams: 0},
		{name: "positive infinity clamps to zero", kg: math.Inf(1), grams: 0},
		{name: "negative infinity clamps to zero", kg: math.Inf(-1), grams: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := kernel.NewWeightFromKilograms(tc.kg)

			assert.Equal(t, tc.grams, w.Grams())
		})
	}
}

func TestNewWeightFromGrams_NegativeClampsToZero(t *testing.T) {
	assert.True(t, kernel.NewWeightFromGrams(-100).IsZero())
	assert.Equal(t, int64(100), kernel.NewWeightFromGrams(100).Grams())
}

func TestWeight_Comparisons(t *testing.T) {
	light := kernel.NewWeightFromKilograms(5)
	heavy := kernel.NewWeightFromKilograms(10)

	assert.True(t, light.Less(heavy))
	assert.False(t, heavy.Less(light))
	assert.True(t, heavy.AtLeast(light))
	assert.True(t, heavy.AtLeast(heavy))
	assert.True(t, light.AtMost(heavy))
	assert.True(t, light.AtMost(light))
	assert.Equal(t, heavy, light.Max(heavy))
	assert.Equal(t, heavy, heavy.Max(light))
}

func TestWeight_String(t *testing.T) {
	assert.Equal(t, "10.500 kg", kernel.NewWeightFromKilograms(10.5).String())
	assert.Equal(t, "0.000 kg", kernel.Weight{}.String())
}
