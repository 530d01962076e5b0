package verification

import (
	"errors"
	"fmt"
	"time"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/pkg/errs"
)

var (
	// ErrVerificationRecordIsNotConstructed is returned when a
	// VerificationRecord was not created through a factory method.
	ErrVerificationRecordIsNotConstructed = errors.New(
		"VerificationRecord must be created via NewVerificationRecord constructor",
	)

	// ErrRecordIsCompleted is wrapped into the conflict returned when a
	// completed record is mutated.
	ErrRecordIsCompleted = errors.New("verification record is completed")
)

// Pricer resolves a chargeable weight to a rate on a route. It is
// implemented by the RateResolver domain service; the aggregate only
// depends on the contract so repricing stays testable in isolation.
type Pricer interface {
	Resolve(route rates.Route, chargeable kernel.Weight) rates.Resolution
}

// Input carries the operator-entered facts of a verification. It is
// applied to the record as a whole; every application recomputes the
// derived fields.
type Input struct {
	InvoiceNumber    string
	TrackingNumber   string
	Route            rates.Route
	ActualWeight     kernel.Weight
	VolumetricWeight kernel.Weight

	// ManualRatePerKg is honored only while automatic resolution yields
	// zero; the instant resolution turns positive the derived rate wins
	// again.
	ManualRatePerKg kernel.Money

	BoxCount        int
	Classification  Classification
	CargoService    CargoService
	ReceiverAddress string
	ReceiverPhone   string
	OperatorName    string
	SenderChecked   bool
	ReceiverChecked bool
}

// VerificationRecord is the aggregate produced once per shipment
// request. It accumulates operator input, keeps its derived billing
// fields (chargeable weight, weight type, rate, amount) consistent on
// every change, and becomes immutable once completed.
//
// Invariants:
//   - exactly one record per shipment request
//   - ratePerKg equals the resolver's answer whenever that answer is
//     positive; a manual rate is possible only while resolution is zero
//   - amount always equals ratePerKg × chargeableWeight
//   - no mutation after completedAt is set
type VerificationRecord struct {
	id        kernel.UUID
	requestID kernel.UUID

	invoiceNumber  string
	trackingNumber string
	route          rates.Route

	actualWeight     kernel.Weight
	volumetricWeight kernel.Weight
	chargeableWeight kernel.Weight
	weightType       WeightType

	ratePerKg    kernel.Money
	bracketLabel string
	matchKind    rates.MatchKind
	rateIsManual bool
	amount       kernel.Money

	boxCount        int
	classification  Classification
	cargoService    CargoService
	receiverAddress string
	receiverPhone   string
	operatorName    string
	senderChecked   bool
	receiverChecked bool

	completedAt *time.Time

	isConstructed bool
}

// NewVerificationRecord opens a draft verification for a shipment
// request on the given route. All operator facts arrive later through
// ApplyInput.
func NewVerificationRecord(id, requestID kernel.UUID, route rates.Route) (*VerificationRecord, error) {
	if err := errors.Join(
		id.Validate(),
		requestID.Validate(),
		route.Validate(),
	); err != nil {
		return nil, err
	}

	return &VerificationRecord{
		id:             id,
		requestID:      requestID,
		route:          route,
		classification: classificationFor(route, ClassificationUnspecified),
		isConstructed:  true,
	}, nil
}

// RestoreParams carries the persisted state of a record for
// reconstruction from storage.
type RestoreParams struct {
	ID               kernel.UUID
	RequestID        kernel.UUID
	InvoiceNumber    string
	TrackingNumber   string
	Route            rates.Route
	ActualWeight     kernel.Weight
	VolumetricWeight kernel.Weight
	ChargeableWeight kernel.Weight
	WeightType       WeightType
	RatePerKg        kernel.Money
	BracketLabel     string
	MatchKind        rates.MatchKind
	RateIsManual     bool
	Amount           kernel.Money
	BoxCount         int
	Classification   Classification
	CargoService     CargoService
	ReceiverAddress  string
	ReceiverPhone    string
	OperatorName     string
	SenderChecked    bool
	ReceiverChecked  bool
	CompletedAt      *time.Time
}

// RestoreVerificationRecord reconstructs a record from persistence.
// Used by repositories only.
func RestoreVerificationRecord(p RestoreParams) (*VerificationRecord, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.RequestID.Validate(),
		p.Route.Validate(),
		p.Classification.Validate(),
		p.CargoService.Validate(),
	); err != nil {
		return nil, err
	}

	return &VerificationRecord{
		id:               p.ID,
		requestID:        p.RequestID,
		invoiceNumber:    p.InvoiceNumber,
		trackingNumber:   p.TrackingNumber,
		route:            p.Route,
		actualWeight:     p.ActualWeight,
		volumetricWeight: p.VolumetricWeight,
		chargeableWeight: p.ChargeableWeight,
		weightType:       p.WeightType,
		ratePerKg:        p.RatePerKg,
		bracketLabel:     p.BracketLabel,
		matchKind:        p.MatchKind,
		rateIsManual:     p.RateIsManual,
		amount:           p.Amount,
		boxCount:         p.BoxCount,
		classification:   p.Classification,
		cargoService:     p.CargoService,
		receiverAddress:  p.ReceiverAddress,
		receiverPhone:    p.ReceiverPhone,
		operatorName:     p.OperatorName,
		senderChecked:    p.SenderChecked,
		receiverChecked:  p.ReceiverChecked,
		completedAt:      p.CompletedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the record was created through a factory method.
func (r *VerificationRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrVerificationRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by identifier.
func (r *VerificationRecord) IsEqual(other *VerificationRecord) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *VerificationRecord) ID() kernel.UUID { return r.id }

// RequestID returns the shipment request the record belongs to.
func (r *VerificationRecord) RequestID() kernel.UUID { return r.requestID }

// InvoiceNumber returns the operator-entered invoice identifier.
func (r *VerificationRecord) InvoiceNumber() string { return r.invoiceNumber }

// TrackingNumber returns the operator-entered tracking identifier.
func (r *VerificationRecord) TrackingNumber() string { return r.trackingNumber }

// Route returns the shipping lane of the record.
func (r *VerificationRecord) Route() rates.Route { return r.route }

// ActualWeight returns the scale weight.
func (r *VerificationRecord) ActualWeight() kernel.Weight { return r.actualWeight }

// VolumetricWeight returns the dimensional weight.
func (r *VerificationRecord) VolumetricWeight() kernel.Weight { return r.volumetricWeight }

// ChargeableWeight returns the derived billable weight.
func (r *VerificationRecord) ChargeableWeight() kernel.Weight { return r.chargeableWeight }

// WeightType returns which measurement won the chargeable comparison.
func (r *VerificationRecord) WeightType() WeightType { return r.weightType }

// RatePerKg returns the current per-kilogram rate.
func (r *VerificationRecord) RatePerKg() kernel.Money { return r.ratePerKg }

// BracketLabel returns the matched bracket label, empty for manual rates.
func (r *VerificationRecord) BracketLabel() string { return r.bracketLabel }

// MatchKind reports how the current rate was obtained.
func (r *VerificationRecord) MatchKind() rates.MatchKind { return r.matchKind }

// RateIsManual reports whether the rate was entered by the operator
// because automatic resolution yielded zero.
func (r *VerificationRecord) RateIsManual() bool { return r.rateIsManual }

// Amount returns the billable amount, ratePerKg × chargeableWeight.
func (r *VerificationRecord) Amount() kernel.Money { return r.amount }

// BoxCount returns the number of boxes in the shipment.
func (r *VerificationRecord) BoxCount() int { return r.boxCount }

// Classification returns the shipment classification.
func (r *VerificationRecord) Classification() Classification { return r.classification }

// CargoService returns the booked transport service.
func (r *VerificationRecord) CargoService() CargoService { return r.cargoService }

// ReceiverAddress returns the receiver's delivery address.
func (r *VerificationRecord) ReceiverAddress() string { return r.receiverAddress }

// ReceiverPhone returns the receiver's phone number.
func (r *VerificationRecord) ReceiverPhone() string { return r.receiverPhone }

// OperatorName returns the verifying operator or agent name.
func (r *VerificationRecord) OperatorName() string { return r.operatorName }

// SenderChecked reports the sender-side checklist flag.
func (r *VerificationRecord) SenderChecked() bool { return r.senderChecked }

// ReceiverChecked reports the receiver-side checklist flag.
func (r *VerificationRecord) ReceiverChecked() bool { return r.receiverChecked }

// CompletedAt returns the completion timestamp, nil while in draft.
func (r *VerificationRecord) CompletedAt() *time.Time {
	if r.completedAt == nil {
		return nil
	}
	v := *r.completedAt
	return &v
}

// IsCompleted reports whether the record reached its terminal state.
func (r *VerificationRecord) IsCompleted() bool {
	return r.completedAt != nil
}

// ApplyInput is the single mutation entry point of a draft record. It
// stores the operator facts and recomputes every derived field:
// chargeable weight, weight type, resolved rate, bracket label and
// billable amount.
//
// The rate field follows the resolver, not the operator: while the
// resolver returns a positive rate the manual rate in the input is
// ignored; only when resolution yields zero does the manual rate apply,
// and the next recompute that resolves positively reverts it.
//
// On the UAE→PH route the classification is forced to general cargo,
// overriding the input.
func (r *VerificationRecord) ApplyInput(input Input, pricer Pricer) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.IsCompleted() {
		return errs.NewConflictErrorWithCause("verificationRecord", ErrRecordIsCompleted)
	}
	if pricer == nil {
		return errs.NewValueIsRequiredError("pricer")
	}
	if err := errors.Join(
		input.Route.Validate(),
		input.Classification.Validate(),
		input.CargoService.Validate(),
		validateBoxCount(input.BoxCount),
	); err != nil {
		return err
	}

	r.invoiceNumber = input.InvoiceNumber
	r.trackingNumber = input.TrackingNumber
	r.route = input.Route
	r.actualWeight = input.ActualWeight
	r.volumetricWeight = input.VolumetricWeight
	r.boxCount = input.BoxCount
	r.classification = classificationFor(input.Route, input.Classification)
	r.cargoService = input.CargoService
	r.receiverAddress = input.ReceiverAddress
	r.receiverPhone = input.ReceiverPhone
	r.operatorName = input.OperatorName
	r.senderChecked = input.SenderChecked
	r.receiverChecked = input.ReceiverChecked

	r.reprice(input.ManualRatePerKg, pricer)
	return nil
}

// reprice recomputes the derived billing fields from the current
// measurements.
func (r *VerificationRecord) reprice(manualRate kernel.Money, pricer Pricer) {
	r.chargeableWeight, r.weightType = Classify(r.actualWeight, r.volumetricWeight)

	resolution := pricer.Resolve(r.route, r.chargeableWeight)
	if resolution.RatePerKg.IsPositive() {
		r.ratePerKg = resolution.RatePerKg
		r.bracketLabel = resolution.BracketLabel
		r.matchKind = resolution.Kind
		r.rateIsManual = false
	} else {
		r.ratePerKg = manualRate
		r.bracketLabel = ""
		r.matchKind = resolution.Kind
		r.rateIsManual = true
	}

	r.amount = r.ratePerKg.MulPerKg(r.chargeableWeight)
}

// Complete transitions the record from draft to its terminal completed
// state. Every unmet condition is collected into one
// IncompleteRecordError so the operator sees the full remaining list in
// a single response.
func (r *VerificationRecord) Complete(now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.IsCompleted() {
		return errs.NewConflictErrorWithCause("verificationRecord", ErrRecordIsCompleted)
	}

	var missing []string
	appendMissing := func(ok bool, what string) {
		if !ok {
			missing = append(missing, what)
		}
	}

	appendMissing(r.invoiceNumber != "", "invoice number")
	appendMissing(r.trackingNumber != "", "tracking number")
	// Chargeable weight derives from the two measurements, so both must
	// be captured; max(actual, volumetric) being positive is not enough.
	appendMissing(r.actualWeight.IsPositive(), "actual weight")
	appendMissing(r.volumetricWeight.IsPositive(), "volumetric weight")
	appendMissing(r.receiverAddress != "", "receiver address")
	appendMissing(r.receiverPhone != "", "receiver phone")
	appendMissing(r.operatorName != "", "operator name")
	appendMissing(r.classification != ClassificationUnspecified, "classification")
	appendMissing(r.ratePerKg.IsPositive(), "rate per kg")
	appendMissing(r.cargoService != CargoServiceUnspecified, "cargo service")
	appendMissing(r.boxCount >= 1, "box count")
	appendMissing(r.senderChecked, "sender checklist")
	appendMissing(r.receiverChecked, "receiver checklist")

	if len(missing) > 0 {
		return errs.NewIncompleteRecordError(missing)
	}

	completedAt := now
	r.completedAt = &completedAt
	return nil
}

func validateBoxCount(boxCount int) error {
	if boxCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("boxCount",
			fmt.Errorf("%d is negative", boxCount))
	}
	return nil
}
