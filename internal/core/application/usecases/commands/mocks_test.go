package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"cargopay/internal/core/application/usecases/commands"
	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/core/domain/services"
	"cargopay/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVerificationRepository struct{ mock.Mock }

func (m *MockVerificationRepository) Add(ctx context.Context, r *verification.VerificationRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockVerificationRepository) Update(ctx context.Context, r *verification.VerificationRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockVerificationRepository) Get(ctx context.Context, id kernel.UUID) (*verification.VerificationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verification.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) (*verification.VerificationRecord, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verification.VerificationRecord), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.DeliveryAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.DeliveryAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.DeliveryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByAccessCode(ctx context.Context, code string) (*assignment.DeliveryAssignment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.DeliveryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByVerificationID(ctx context.Context, verificationID kernel.UUID) (*assignment.DeliveryAssignment, error) {
	args := m.Called(ctx, verificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.DeliveryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllPending(ctx context.Context, now time.Time) ([]*assignment.DeliveryAssignment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.DeliveryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) SaveDriverIdentity(ctx context.Context, a *assignment.DeliveryAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) SaveOutcome(ctx context.Context, a *assignment.DeliveryAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) ExpireCodes(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockVerificationUoW struct{ mock.Mock }

func (m *MockVerificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVerificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVerificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVerificationUoW) VerificationRepository() ports.VerificationRepository {
	args := m.Called()
	return args.Get(0).(ports.VerificationRepository)
}

type MockVerificationUoWFactory struct{ mock.Mock }

func (m *MockVerificationUoWFactory) Create() commands.VerificationUoW {
	args := m.Called()
	return args.Get(0).(commands.VerificationUoW)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VerificationRepository() ports.VerificationRepository {
	args := m.Called()
	return args.Get(0).(ports.VerificationRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockProofStorage struct{ mock.Mock }

func (m *MockProofStorage) Store(ctx context.Context, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, contentType, content)
	return args.String(0), args.Error(1)
}

func (m *MockProofStorage) Load(ctx context.Context, ref string) (string, io.ReadCloser, error) {
	args := m.Called(ctx, ref)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(io.ReadCloser), args.Error(2)
}

// Fixture helpers shared by the handler tests.

func testPricer(t *testing.T) verification.Pricer {
	t.Helper()

	resolver, err := services.NewRateResolver(rates.DefaultTable())
	require.NoError(t, err)
	return resolver
}

func fullInput() verification.Input {
	return verification.Input{
		InvoiceNumber:    "INV-1001",
		TrackingNumber:   "TRK-2002",
		Route:            rates.RoutePHToUAE,
		ActualWeight:     kernel.NewWeightFromKilograms(10),
		VolumetricWeight: kernel.NewWeightFromKilograms(5),
		BoxCount:         2,
		Classification:   verification.ClassificationPersonalEffects,
		CargoService:     verification.CargoServiceSea,
		ReceiverAddress:  "Villa 12, Al Qusais, Dubai",
		ReceiverPhone:    "+971501234567",
		OperatorName:     "M. Santos",
		SenderChecked:    true,
		ReceiverChecked:  true,
	}
}

func draftRecord(t *testing.T) *verification.VerificationRecord {
	t.Helper()

	record, err := verification.NewVerificationRecord(
		kernel.NewUUID(), kernel.NewUUID(), rates.RoutePHToUAE)
	require.NoError(t, err)
	require.NoError(t, record.ApplyInput(fullInput(), testPricer(t)))
	return record
}

func completedRecord(t *testing.T) *verification.VerificationRecord {
	t.Helper()

	record := draftRecord(t)
	require.NoError(t, record.Complete(time.Now().UTC()))
	return record
}

func pendingAssignment(t *testing.T, code string) *assignment.DeliveryAssignment {
	t.Helper()

	accessCode, err := assignment.RestoreAccessCode(code, time.Now().UTC().Add(72*time.Hour), false)
	require.NoError(t, err)

	a, err := assignment.NewDeliveryAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.MustParseMoney("390.00"), accessCode)
	require.NoError(t, err)
	return a
}

func identifiedAssignment(t *testing.T, code string) *assignment.DeliveryAssignment {
	t.Helper()

	a := pendingAssignment(t, code)
	driver, err := assignment.NewDriverIdentity("Ahmed K.", "+971509876543")
	require.NoError(t, err)
	require.NoError(t, a.LockDriverIdentity(driver, time.Now().UTC()))
	return a
}
