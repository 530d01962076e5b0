// Package rates contains the static rate configuration of the billing
// engine: shipping routes, weight brackets with per-kilogram rates, and
// the route-keyed rate table.
//
// A Table is loaded once at startup and immutable afterwards. Resolution
// of a chargeable weight against a table is performed by the RateResolver
// domain service; this package only guarantees that every route carries
// at least one bracket the resolver may fall back to, so resolution is
// total for any valid table.
package rates
