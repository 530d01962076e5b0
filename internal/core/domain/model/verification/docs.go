// Package verification contains the shipment verification side of the
// pipeline: the weight classifier that derives the chargeable weight
// from actual and volumetric measurements, and the VerificationRecord
// aggregate an operator fills in until it is complete enough to bill.
//
// A record recomputes its derived fields (chargeable weight, weight
// type, resolved rate, billable amount) on every input change through a
// single mutation entry point, and becomes immutable once completed.
package verification
