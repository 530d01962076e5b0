package assignment

import (
	"fmt"

	"cargopay/internal/pkg/errs"
)

// DeliveryStatus is the physical outcome of an assignment.
//
// NotDelivered is the creation default and also the result of a
// cancelled attempt; Delivered is set only together with a collected
// payment.
type DeliveryStatus int

const (
	// NotDelivered means the shipment has not reached the receiver.
	NotDelivered DeliveryStatus = iota

	// Delivered means the shipment was handed over and paid for.
	Delivered
)

// getDeliveryStatusStrings returns the string representation of every
// delivery status.
func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		NotDelivered: "NotDelivered",
		Delivered:    "Delivered",
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
