// Package assignment contains the DeliveryAssignment aggregate: the unit
// a driver physically executes. An assignment carries the billable
// amount computed during verification, a single-use access code that
// gates the unauthenticated payment-collection workflow, and the
// delivery/payment state the workflow drives.
//
// Two invariants define the package:
//   - the access code is usable exactly once; completion consumes it and
//     every later entry attempt is refused as already processed
//   - the driver identity, once recorded, is write-once; a differing
//     name or phone is rejected, never silently ignored
package assignment
