package verification

import "cargopay/internal/core/domain/model/kernel"

// WeightType identifies which measurement won the chargeable-weight
// comparison.
type WeightType int

const (
	// WeightTypeUndetermined means no measurement has been entered yet
	// (both actual and volumetric are zero).
	WeightTypeUndetermined WeightType = iota

	// WeightTypeActual means the scale weight is billed. Ties between
	// actual and volumetric favor actual.
	WeightTypeActual

	// WeightTypeVolumetric means the dimensional weight is billed.
	WeightTypeVolumetric
)

// String returns the human-readable name of the weight type.
func (t WeightType) String() string {
	switch t {
	case WeightTypeActual:
		return "Actual"
	case WeightTypeVolumetric:
		return "Volumetric"
	default:
		return "Undetermined"
	}
}

// Classify derives the chargeable weight from a shipment's actual and
// volumetric measurements: the greater of the two is billed, with ties
// favoring the actual weight. When both measurements are zero the
// shipment is not yet measurable and the type is undetermined.
//
// Classify has no error cases. Negative and non-finite figures are
// already clamped to zero by the Weight constructors.
func Classify(actual, volumetric kernel.Weight) (kernel.Weight, WeightType) {
	if actual.IsZero() && volumetric.IsZero() {
		return kernel.Weight{}, WeightTypeUndetermined
	}
	if actual.AtLeast(volumetric) {
		return actual, WeightTypeActual
	}
	return volumetric, WeightTypeVolumetric
}
