// Package assignmentrepo provides data transfer objects and mapping
// functions for delivery assignment persistence. The guarded update
// methods enforce the single-use access code and write-once driver
// identity at the storage level.
package assignmentrepo

import (
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryAssignmentDTO represents the database structure for persisting
// delivery assignments. The amount column holds minor units.
type DeliveryAssignmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	VerificationID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount         int64

	AccessCode    string `gorm:"uniqueIndex"`
	CodeExpiresAt time.Time
	CodeUsed      bool

	Delivered        bool
	PaymentCollected bool

	PaymentMethod      string
	PaymentReference   string
	PaymentProofRef    string
	PaymentConfirmedBy string

	DriverName  string
	DriverPhone string

	CancellationReason string
}

// TableName specifies the database table name for delivery assignments.
func (DeliveryAssignmentDTO) TableName() string {
	return "delivery_assignments"
}

// fromDomain converts a delivery assignment aggregate to its database
// representation.
func fromDomain(aggregate *assignment.DeliveryAssignment) DeliveryAssignmentDTO {
	dto := DeliveryAssignmentDTO{
		ID:                 aggregate.ID().Bytes(),
		VerificationID:     aggregate.VerificationID().Bytes(),
		Amount:             aggregate.Amount().MinorUnits(),
		AccessCode:         aggregate.AccessCode().Value(),
		CodeExpiresAt:      aggregate.AccessCode().ExpiresAt(),
		CodeUsed:           aggregate.AccessCode().IsUsed(),
		Delivered:          aggregate.DeliveryStatus() == assignment.Delivered,
		PaymentCollected:   aggregate.PaymentCollected(),
		CancellationReason: aggregate.CancellationReason(),
	}

	if payment := aggregate.Payment(); payment != nil {
		dto.PaymentMethod = payment.Method().String()
		dto.PaymentReference = payment.Reference()
		dto.PaymentProofRef = payment.ProofRef()
		dto.PaymentConfirmedBy = payment.ConfirmedBy()
	}

	if driver := aggregate.Driver(); driver != nil {
		dto.DriverName = driver.Name()
		dto.DriverPhone = driver.Phone()
	}

	return dto
}

// toDomain converts a database DTO to a delivery assignment aggregate
// using RestoreDeliveryAssignment.
func toDomain(dto DeliveryAssignmentDTO) (*assignment.DeliveryAssignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	verificationID, err := kernel.UUIDFromBytes(dto.VerificationID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromMinorUnits(dto.Amount)
	if err != nil {
		return nil, err
	}

	code, err := assignment.RestoreAccessCode(dto.AccessCode, dto.CodeExpiresAt, dto.CodeUsed)
	if err != nil {
		return nil, err
	}

	var driver *assignment.DriverIdentity
	if dto.DriverName != "" && dto.DriverPhone != "" {
		identity, driverErr := assignment.NewDriverIdentity(dto.DriverName, dto.DriverPhone)
		if driverErr != nil {
			return nil, driverErr
		}
		driver = &identity
	}

	var payment *assignment.PaymentDetails
	if dto.PaymentMethod != "" {
		details, paymentErr := assignment.NewPaymentDetails(
			assignment.PaymentMethod(dto.PaymentMethod),
			dto.PaymentReference,
			dto.PaymentProofRef,
			dto.PaymentConfirmedBy,
		)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payment = &details
	}

	deliveryStatus := assignment.NotDelivered
	if dto.Delivered {
		deliveryStatus = assignment.Delivered
	}

	return assignment.RestoreDeliveryAssignment(assignment.RestoreParams{
		ID:                 id,
		VerificationID:     verificationID,
		Amount:             amount,
		Code:               code,
		DeliveryStatus:     deliveryStatus,
		PaymentCollected:   dto.PaymentCollected,
		Payment:            payment,
		Driver:             driver,
		CancellationReason: dto.CancellationReason,
	})
}
