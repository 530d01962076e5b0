// Package kernel provides core domain primitives for the cargopay system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point monetary amount in minor units of the billing currency
//   - Weight: A fixed-point shipment weight in grams
//
// Money and Weight deliberately avoid binary floating point: bracket
// membership and billing totals are decided on integer minor units and
// grams, so no comparison can drift with float rounding.
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
