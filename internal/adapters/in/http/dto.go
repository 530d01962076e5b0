package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the uniform error body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OpenVerificationRequest opens a draft verification record. Weights are
// grams and may be omitted when the cargo is not weighed yet.
type OpenVerificationRequest struct {
	RequestID             uuid.UUID `json:"requestId"`
	Route                 string    `json:"route"`
	ActualWeightGrams     int64     `json:"actualWeightGrams"`
	VolumetricWeightGrams int64     `json:"volumetricWeightGrams"`
}

// OpenVerificationResponse returns the identifier of the opened record.
type OpenVerificationResponse struct {
	VerificationID uuid.UUID `json:"verificationId"`
}

// UpdateVerificationRequest carries the full operator input of a
// verification. Monetary values are minor units, weights are grams.
type UpdateVerificationRequest struct {
	InvoiceNumber         string `json:"invoiceNumber"`
	TrackingNumber        string `json:"trackingNumber"`
	Route                 string `json:"route"`
	ActualWeightGrams     int64  `json:"actualWeightGrams"`
	VolumetricWeightGrams int64  `json:"volumetricWeightGrams"`
	ManualRatePerKg       int64  `json:"manualRatePerKg"`
	BoxCount              int    `json:"boxCount"`
	Classification        string `json:"classification"`
	CargoService          string `json:"cargoService"`
	ReceiverAddress       string `json:"receiverAddress"`
	ReceiverPhone         string `json:"receiverPhone"`
	OperatorName          string `json:"operatorName"`
	SenderChecked         bool   `json:"senderChecked"`
	ReceiverChecked       bool   `json:"receiverChecked"`
}

// Verification is the full read model of one verification record.
type Verification struct {
	VerificationID        uuid.UUID  `json:"verificationId"`
	RequestID             uuid.UUID  `json:"requestId"`
	InvoiceNumber         string     `json:"invoiceNumber"`
	TrackingNumber        string     `json:"trackingNumber"`
	Route                 string     `json:"route"`
	ActualWeightGrams     int64      `json:"actualWeightGrams"`
	VolumetricWeightGrams int64      `json:"volumetricWeightGrams"`
	ChargeableWeightGrams int64      `json:"chargeableWeightGrams"`
	WeightType            string     `json:"weightType"`
	RatePerKg             int64      `json:"ratePerKg"`
	BracketLabel          string     `json:"bracketLabel"`
	RateIsManual          bool       `json:"rateIsManual"`
	Amount                int64      `json:"amount"`
	BoxCount              int        `json:"boxCount"`
	Classification        string     `json:"classification"`
	CargoService          string     `json:"cargoService"`
	ReceiverAddress       string     `json:"receiverAddress"`
	ReceiverPhone         string     `json:"receiverPhone"`
	OperatorName          string     `json:"operatorName"`
	SenderChecked         bool       `json:"senderChecked"`
	ReceiverChecked       bool       `json:"receiverChecked"`
	CompletedAt           *time.Time `json:"completedAt"`
	IsCompleted           bool       `json:"isCompleted"`
}

// CreateAssignmentRequest dispatches a delivery assignment for a
// completed verification. CodeTtlHours defaults to 72 when omitted.
type CreateAssignmentRequest struct {
	VerificationID uuid.UUID `json:"verificationId"`
	CodeTtlHours   int       `json:"codeTtlHours"`
}

// CreateAssignmentResponse returns the identifier of the new assignment.
type CreateAssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignmentId"`
}

// PendingCollection is one undelivered assignment on the dashboard.
type PendingCollection struct {
	AssignmentID       uuid.UUID `json:"assignmentId"`
	TrackingNumber     string    `json:"trackingNumber"`
	Amount             int64     `json:"amount"`
	AccessCode         string    `json:"accessCode"`
	CodeExpiresAt      time.Time `json:"codeExpiresAt"`
	DriverName         string    `json:"driverName"`
	DriverPhone        string    `json:"driverPhone"`
	CancellationReason string    `json:"cancellationReason"`
}

// Collection is everything the code-gated collection page renders.
type Collection struct {
	AssignmentID   uuid.UUID `json:"assignmentId"`
	VerificationID uuid.UUID `json:"verificationId"`
	Amount         int64     `json:"amount"`

	InvoiceNumber   string `json:"invoiceNumber"`
	TrackingNumber  string `json:"trackingNumber"`
	BoxCount        int    `json:"boxCount"`
	ReceiverAddress string `json:"receiverAddress"`
	ReceiverPhone   string `json:"receiverPhone"`

	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone"`
	HasDriver   bool   `json:"hasDriver"`

	Delivered          bool   `json:"delivered"`
	PaymentCollected   bool   `json:"paymentCollected"`
	PaymentMethod      string `json:"paymentMethod"`
	PaymentReference   string `json:"paymentReference"`
	PaymentProofRef    string `json:"paymentProofRef"`
	PaymentConfirmedBy string `json:"paymentConfirmedBy"`
	CancellationReason string `json:"cancellationReason"`

	CodeExpiresAt    time.Time `json:"codeExpiresAt"`
	AlreadyProcessed bool      `json:"alreadyProcessed"`
	Expired          bool      `json:"expired"`
	EntryStage       string    `json:"entryStage"`
}

// IdentifyDriverRequest locks the driver identity for an assignment.
type IdentifyDriverRequest struct {
	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone"`
}

// CancelDeliveryRequest records a failed delivery attempt.
type CancelDeliveryRequest struct {
	Reason string `json:"reason"`
}

// CompleteDeliveryResponse reports the payment facts after a completion
// attempt. AlreadyProcessed marks an idempotent replay.
type CompleteDeliveryResponse struct {
	AlreadyProcessed bool   `json:"alreadyProcessed"`
	Amount           int64  `json:"amount"`
	Method           string `json:"method"`
	Reference        string `json:"reference"`
	ProofRef         string `json:"proofRef"`
	ConfirmedBy      string `json:"confirmedBy"`
}
