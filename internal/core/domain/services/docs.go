// Package services provides domain services for the billing engine of
// the cargopay system. It implements business logic that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - RateResolver: A pure, total resolver from (route, chargeable weight)
//     to a per-kilogram rate with an explicit exact/fallback match kind
//
// Domain services stay side-effect free; persistence and transport are
// handled by the application and adapter layers.
package services
