package rates

import (
	"fmt"

	"cargopay/internal/pkg/errs"
)

// Route is a directional shipping lane. It selects which bracket table
// applies when a chargeable weight is priced.
type Route string

const (
	// RoutePHToUAE ships from the Philippines to the United Arab Emirates.
	RoutePHToUAE Route = "PH_TO_UAE"

	// RouteUAEToPH ships from the United Arab Emirates to the Philippines.
	RouteUAEToPH Route = "UAE_TO_PH"
)

// Validate checks that the route is one of the known shipping lanes.
func (r Route) Validate() error {
	switch r {
	case RoutePHToUAE, RouteUAEToPH:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("route",
			fmt.Errorf("%q is not a known route", string(r)))
	}
}

// String returns the wire representation of the route.
func (r Route) String() string {
	return string(r)
}
