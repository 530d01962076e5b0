package verification

import (
	"fmt"

	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/pkg/errs"
)

// Classification is the operator-selected category of a shipment's
// contents.
//
// The UAE→PH lane only accepts general cargo, so on that route the
// classification is forced to ClassificationGeneral and any previously
// chosen value is overridden. On PH→UAE the operator chooses from the
// full enumeration.
type Classification string

const (
	// ClassificationUnspecified is the empty default before an operator
	// has made a choice.
	ClassificationUnspecified Classification = ""

	// ClassificationGeneral is all-kinds general cargo.
	ClassificationGeneral Classification = "GENERAL"

	// ClassificationPersonalEffects is used for personal belongings.
	ClassificationPersonalEffects Classification = "PERSONAL_EFFECTS"

	// ClassificationCommercial is used for commercial goods.
	ClassificationCommercial Classification = "COMMERCIAL"

	// ClassificationDocuments is used for document-only shipments.
	ClassificationDocuments Classification = "DOCUMENTS"
)

// Validate checks that the classification is a known value. The
// unspecified default is valid on a draft record; completeness is
// enforced separately.
func (c Classification) Validate() error {
	switch c {
	case ClassificationUnspecified, ClassificationGeneral,
		ClassificationPersonalEffects, ClassificationCommercial, ClassificationDocuments:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("classification",
			fmt.Errorf("%q is not a known classification", string(c)))
	}
}

// String returns the wire representation of the classification.
func (c Classification) String() string {
	return string(c)
}

// classificationFor applies the route rule: UAE→PH mandates general
// cargo; other routes keep the operator's choice.
func classificationFor(route rates.Route, chosen Classification) Classification {
	if route == rates.RouteUAEToPH {
		return ClassificationGeneral
	}
	return chosen
}

// CargoService is the transport service a shipment is booked on.
type CargoService string

const (
	// CargoServiceUnspecified is the empty default before an operator
	// has made a choice.
	CargoServiceUnspecified CargoService = ""

	// CargoServiceSea is sea freight.
	CargoServiceSea CargoService = "SEA"

	// CargoServiceAir is air freight.
	CargoServiceAir CargoService = "AIR"
)

// Validate checks that the cargo service is a known value.
func (s CargoService) Validate() error {
	switch s {
	case CargoServiceUnspecified, CargoServiceSea, CargoServiceAir:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("cargoService",
			fmt.Errorf("%q is not a known cargo service", string(s)))
	}
}

// String returns the wire representation of the cargo service.
func (s CargoService) String() string {
	return string(s)
}
