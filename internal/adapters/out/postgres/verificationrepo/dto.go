// Package verificationrepo provides data transfer objects and mapping
// functions for verification record persistence. This package implements
// the repository pattern for the verification aggregate, handling the
// conversion between domain entities and database representations.
package verificationrepo

import (
	"time"

	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/core/domain/model/verification"

	"github.com/google/uuid"
)

// VerificationRecordDTO represents the database structure for persisting
// verification records. Monetary columns hold minor units and weight
// columns hold grams, so every stored figure is an exact integer.
type VerificationRecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	InvoiceNumber  string
	TrackingNumber string
	Route          string `gorm:"index"`

	ActualWeightGrams     int64
	VolumetricWeightGrams int64
	ChargeableWeightGrams int64
	WeightType            int

	RatePerKg    int64
	BracketLabel string
	MatchKind    int
	RateIsManual bool
	Amount       int64

	BoxCount        int
	Classification  string
	CargoService    string
	ReceiverAddress string
	ReceiverPhone   string
	OperatorName    string
	SenderChecked   bool
	ReceiverChecked bool

	CompletedAt *time.Time
}

// TableName specifies the database table name for verification records.
func (VerificationRecordDTO) TableName() string {
	return "verification_records"
}

// fromDomain converts a verification record aggregate to its database
// representation.
func fromDomain(record *verification.VerificationRecord) VerificationRecordDTO {
	return VerificationRecordDTO{
		ID:                    record.ID().Bytes(),
		RequestID:             record.RequestID().Bytes(),
		InvoiceNumber:         record.InvoiceNumber(),
		TrackingNumber:        record.TrackingNumber(),
		Route:                 string(record.Route()),
		ActualWeightGrams:     record.ActualWeight().Grams(),
		VolumetricWeightGrams: record.VolumetricWeight().Grams(),
		ChargeableWeightGrams: record.ChargeableWeight().Grams(),
		WeightType:            int(record.WeightType()),
		RatePerKg:             record.RatePerKg().MinorUnits(),
		BracketLabel:          record.BracketLabel(),
		MatchKind:             int(record.MatchKind()),
		RateIsManual:          record.RateIsManual(),
		Amount:                record.Amount().MinorUnits(),
		BoxCount:              record.BoxCount(),
		Classification:        string(record.Classification()),
		CargoService:          string(record.CargoService()),
		ReceiverAddress:       record.ReceiverAddress(),
		ReceiverPhone:         record.ReceiverPhone(),
		OperatorName:          record.OperatorName(),
		SenderChecked:         record.SenderChecked(),
		ReceiverChecked:       record.ReceiverChecked(),
		CompletedAt:           record.CompletedAt(),
	}
}

// toDomain converts a database DTO to a verification record aggregate
// using RestoreVerificationRecord.
func toDomain(dto VerificationRecordDTO) (*verification.VerificationRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	ratePerKg, err := kernel.NewMoneyFromMinorUnits(dto.RatePerKg)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromMinorUnits(dto.Amount)
	if err != nil {
		return nil, err
	}

	return verification.RestoreVerificationRecord(verification.RestoreParams{
		ID:               id,
		RequestID:        requestID,
		InvoiceNumber:    dto.InvoiceNumber,
		TrackingNumber:   dto.TrackingNumber,
		Route:            rates.Route(dto.Route),
		ActualWeight:     kernel.NewWeightFromGrams(dto.ActualWeightGrams),
		VolumetricWeight: kernel.NewWeightFromGrams(dto.VolumetricWeightGrams),
		ChargeableWeight: kernel.NewWeightFromGrams(dto.ChargeableWeightGrams),
		WeightType:       verification.WeightType(dto.WeightType),
		RatePerKg:        ratePerKg,
		BracketLabel:     dto.BracketLabel,
		MatchKind:        rates.MatchKind(dto.MatchKind),
		RateIsManual:     dto.RateIsManual,
		Amount:           amount,
		BoxCount:         dto.BoxCount,
		Classification:   verification.Classification(dto.Classification),
		CargoService:     verification.CargoService(dto.CargoService),
		ReceiverAddress:  dto.ReceiverAddress,
		ReceiverPhone:    dto.ReceiverPhone,
		OperatorName:     dto.OperatorName,
		SenderChecked:    dto.SenderChecked,
		ReceiverChecked:  dto.ReceiverChecked,
		CompletedAt:      dto.CompletedAt,
	})
}
