package queries_test

import (
	"context"
	"testing"
	"time"

	"cargopay/internal/adapters/out/postgres/assignmentrepo"
	"cargopay/internal/adapters/out/postgres/verificationrepo"
	"cargopay/internal/core/application/usecases/queries"
	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/collection"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/core/domain/services"
	"cargopay/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCollectionByCodeQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCollectionByCodeQueryHandler
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&verificationrepo.VerificationRecordDTO{}, &assignmentrepo.DeliveryAssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCollectionByCodeQueryHandler(db)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE verification_records, delivery_assignments").Error
	suite.Require().NoError(err)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_UnknownCode_ReturnsNotFound() {
	query, err := queries.NewGetCollectionByCodeQuery("ZZZZ9999")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCollectionByCodeQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCollectionByCodeQuery constructor")
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_PendingWithoutDriver_StartsAtIdentify() {
	record, aggregate := suite.seedPendingAssignment()

	query, err := queries.NewGetCollectionByCodeQuery(aggregate.AccessCode().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.AssignmentID)
	suite.Equal(record.ID(), result.VerificationID)
	suite.True(aggregate.Amount().IsEqual(result.Amount))
	suite.Equal(record.InvoiceNumber(), result.InvoiceNumber)
	suite.Equal(record.TrackingNumber(), result.TrackingNumber)
	suite.Equal(record.BoxCount(), result.BoxCount)
	suite.Equal(record.ReceiverAddress(), result.ReceiverAddress)
	suite.Equal(record.ReceiverPhone(), result.ReceiverPhone)
	suite.False(result.HasDriver)
	suite.False(result.AlreadyProcessed)
	suite.False(result.Expired)
	suite.Equal(collection.IdentifyDriver, result.EntryStage)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_DriverLocked_StartsAtReview() {
	_, aggregate := suite.seedPendingAssignment()
	suite.lockDriver(aggregate)

	query, err := queries.NewGetCollectionByCodeQuery(aggregate.AccessCode().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.HasDriver)
	suite.Equal("Ahmed K.", result.DriverName)
	suite.Equal("+971509876543", result.DriverPhone)
	suite.Equal(collection.Review, result.EntryStage)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_CollectedPayment_RendersProcessed() {
	_, aggregate := suite.seedPendingAssignment()
	suite.lockDriver(aggregate)

	now := time.Now().UTC()
	payment, err := assignment.NewPaymentDetails(assignment.PaymentMethodBankTransfer, "TRF-123456", "", "")
	suite.Require().NoError(err)
	err = aggregate.CompletePayment(payment, now)
	suite.Require().NoError(err)
	err = suite.assignmentRepo().SaveOutcome(context.Background(), aggregate)
	suite.Require().NoError(err)

	query, err := queries.NewGetCollectionByCodeQuery(aggregate.AccessCode().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.AlreadyProcessed)
	suite.False(result.Expired)
	suite.True(result.Delivered)
	suite.True(result.PaymentCollected)
	suite.Equal("BANK_TRANSFER", result.PaymentMethod)
	suite.Equal("TRF-123456", result.PaymentReference)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_PastExpiry_RendersExpired() {
	record := seedRecord(suite.T(), suite.db)
	aggregate := expiredAssignmentFor(suite.T(), record)
	err := suite.assignmentRepo().Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	query, err := queries.NewGetCollectionByCodeQuery(aggregate.AccessCode().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.Expired)
	suite.False(result.AlreadyProcessed)
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) TestHandle_SweptCode_RendersExpiredNotProcessed() {
	record := seedRecord(suite.T(), suite.db)
	aggregate := expiredAssignmentFor(suite.T(), record)
	err := suite.assignmentRepo().Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	// The expiry sweep marks the code used without collecting payment.
	swept, err := suite.assignmentRepo().ExpireCodes(context.Background(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(int64(1), swept)

	query, err := queries.NewGetCollectionByCodeQuery(aggregate.AccessCode().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.Expired, "A swept code should render as expired")
	suite.False(result.AlreadyProcessed, "A swept code is not a completed collection")
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) assignmentRepo() *assignmentrepo.GormAssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(suite.db, &mockAggregateTracker{})
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) seedPendingAssignment() (*verification.VerificationRecord, *assignment.DeliveryAssignment) {
	record := seedRecord(suite.T(), suite.db)
	aggregate := pendingAssignmentFor(suite.T(), record)
	err := suite.assignmentRepo().Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return record, aggregate
}

func (suite *GetCollectionByCodeQueryHandlerTestSuite) lockDriver(aggregate *assignment.DeliveryAssignment) {
	identity, err := assignment.NewDriverIdentity("Ahmed K.", "+971509876543")
	suite.Require().NoError(err)
	err = aggregate.LockDriverIdentity(identity, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.assignmentRepo().SaveDriverIdentity(context.Background(), aggregate)
	suite.Require().NoError(err)
}

// seedRecord stores a completed verification record and returns it.
func seedRecord(t *testing.T, db *gorm.DB) *verification.VerificationRecord {
	t.Helper()

	resolver, err := services.NewRateResolver(rates.DefaultTable())
	if err != nil {
		t.Fatal(err)
	}

	record, err := verification.NewVerificationRecord(kernel.NewUUID(), kernel.NewUUID(), rates.RoutePHToUAE)
	if err != nil {
		t.Fatal(err)
	}

	input := verification.Input{
		InvoiceNumber:    "INV-1001",
		TrackingNumber:   "TRK-20250814-001",
		Route:            rates.RoutePHToUAE,
		ActualWeight:     kernel.NewWeightFromKilograms(10),
		VolumetricWeight: kernel.NewWeightFromKilograms(8),
		BoxCount:         2,
		Classification:   verification.ClassificationGeneral,
		CargoService:     verification.CargoServiceSea,
		ReceiverAddress:  "Al Barsha 1, Dubai",
		ReceiverPhone:    "+971501234567",
		OperatorName:     "Maria S.",
		SenderChecked:    true,
		ReceiverChecked:  true,
	}
	if err = record.ApplyInput(input, resolver); err != nil {
		t.Fatal(err)
	}
	if err = record.Complete(time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	repo := verificationrepo.NewGormVerificationRepository(db, &mockAggregateTracker{})
	if err = repo.Add(context.Background(), record); err != nil {
		t.Fatal(err)
	}
	return record
}

// pendingAssignmentFor creates an unsaved assignment with a live code.
func pendingAssignmentFor(t *testing.T, record *verification.VerificationRecord) *assignment.DeliveryAssignment {
	t.Helper()
	code, err := assignment.NewAccessCode(time.Now().UTC(), 72*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	aggregate, err := assignment.NewDeliveryAssignment(kernel.NewUUID(), record.ID(), record.Amount(), code)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

// expiredAssignmentFor creates an unsaved assignment whose code expiry
// already passed.
func expiredAssignmentFor(t *testing.T, record *verification.VerificationRecord) *assignment.DeliveryAssignment {
	t.Helper()
	code, err := assignment.NewAccessCode(time.Now().UTC().Add(-48*time.Hour), 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	aggregate, err := assignment.NewDeliveryAssignment(kernel.NewUUID(), record.ID(), record.Amount(), code)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

func TestGetCollectionByCodeQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCollectionByCodeQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests never publish
// tracked aggregates.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
