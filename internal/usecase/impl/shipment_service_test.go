package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	mockRepo "cargofly/internal/mocks/repository"
	mockUsecase "cargofly/internal/mocks/usecase"
	"cargofly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// shipmentServiceFixtures holds all test dependencies for shipment service tests.
type shipmentServiceFixtures struct {
	t         *testing.T
	service   usecase.ShipmentUsecase
	txManager *mockRepo.MockTransactionManager
	pricing   *mockUsecase.MockPricingUsecase
}

func createTestShipmentService(t *testing.T) shipmentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	pricing := mockUsecase.NewMockPricingUsecase(t)
	service := NewShipmentService(txManager, pricing, newTestLogger())

	return shipmentServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		pricing:   pricing,
	}
}

// onExecute stubs the transaction manager to run the callback against a mock
// factory configured by setup, returning whatever the callback returns.
func (f shipmentServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func testCreateShipmentInput(userID string) *usecase.CreateShipmentInput {
	return &usecase.CreateShipmentInput{
		UserID:  userID,
		Service: entity.ServiceStandard,
		Package: entity.Package{
			Weight: decimal.NewFromInt(10),
			Dimensions: entity.Dimensions{
				Length: decimal.NewFromInt(40),
				Width:  decimal.NewFromInt(30),
				Height: decimal.NewFromInt(20),
			},
			Description:   "Spare parts",
			DeclaredValue: decimal.NewFromInt(500),
		},
		Sender: entity.Address{
			Name:       "Ada Obi",
			Street:     "12 Marina Road",
			City:       "Lagos",
			State:      "Lagos",
			PostalCode: "100001",
			Country:    "Nigeria",
			Phone:      "+2348000000000",
		},
		Recipient: entity.Address{
			Name:       "John Mensah",
			Street:     "5 High Street",
			City:       "Accra",
			State:      "Greater Accra",
			PostalCode: "GA-001",
			Country:    "Ghana",
			Phone:      "+233200000000",
		},
		Price: entity.Price{
			Base:      decimal.NewFromInt(450),
			Fuel:      decimal.NewFromInt(54),
			Insurance: decimal.Zero,
			Total:     decimal.NewFromInt(504),
			Currency:  "USD",
		},
	}
}

func testQuote() *usecase.Quote {
	return &usecase.Quote{
		Service:      entity.ServiceStandard,
		Base:         decimal.NewFromInt(450),
		Fuel:         decimal.NewFromInt(54),
		Insurance:    decimal.Zero,
		Total:        decimal.NewFromInt(504),
		Currency:     "USD",
		EstimatedETA: time.Now().AddDate(0, 0, 5),
	}
}

func TestShipmentService_CreateShipment_Success(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	input := testCreateShipmentInput("user-1")
	shipmentID := uuid.New()

	fx.pricing.EXPECT().
		GetQuote(ctx, mock.AnythingOfType("*usecase.QuoteInput")).
		Return(testQuote(), nil)

	var createdShipment *entity.Shipment
	var appendedEvent *entity.TrackingEvent

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)
		eventRepo := mockRepo.NewMockTrackingEventRepository(t)

		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
		factory.EXPECT().TrackingEventRepo().Return(eventRepo)

		shipmentRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Shipment")).
			RunAndReturn(func(ctx context.Context, shipment *entity.Shipment) error {
				shipment.ID = shipmentID
				createdShipment = shipment

				return nil
			})
		eventRepo.EXPECT().
			Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
			RunAndReturn(func(ctx context.Context, event *entity.TrackingEvent) error {
				appendedEvent = event

				return nil
			})
	})

	trackingNumber, err := fx.service.CreateShipment(ctx, input)

	require.NoError(t, err)
	assert.True(t, entity.IsTrackingNumber(trackingNumber), trackingNumber)

	require.NotNil(t, createdShipment)
	assert.Equal(t, trackingNumber, createdShipment.TrackingNumber)
	assert.Equal(t, "user-1", createdShipment.UserID)
	assert.Equal(t, entity.StatusPending, createdShipment.Status)
	assert.Equal(t, 0, createdShipment.Progress)
	assert.Equal(t, "Lagos, Nigeria", createdShipment.CurrentLocation)
	assert.Equal(t, entity.PaymentPending, createdShipment.PaymentStatus)
	// The submitted price is stored exactly as given.
	assert.Equal(t, input.Price, createdShipment.Price)
	assert.True(t, decimal.NewFromInt(504).Equal(createdShipment.Price.Total))

	require.NotNil(t, appendedEvent)
	assert.Equal(t, shipmentID, appendedEvent.ShipmentID)
	assert.Equal(t, entity.StatusPending, appendedEvent.Status)
	assert.Equal(t, "Shipment created and awaiting pickup", appendedEvent.Description)
	assert.Equal(t, "Lagos, Nigeria", appendedEvent.Location)
	assert.Empty(t, appendedEvent.CreatedBy)
}

func TestShipmentService_CreateShipment_CollisionRetries(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	input := testCreateShipmentInput("user-1")

	fx.pricing.EXPECT().
		GetQuote(ctx, mock.AnythingOfType("*usecase.QuoteInput")).
		Return(testQuote(), nil)

	// First attempt collides, second commits.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateTrackingNumber).
		Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	trackingNumber, err := fx.service.CreateShipment(ctx, input)

	require.NoError(t, err)
	assert.True(t, entity.IsTrackingNumber(trackingNumber))
}

func TestShipmentService_CreateShipment_AllAttemptsCollide(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	input := testCreateShipmentInput("user-1")

	fx.pricing.EXPECT().
		GetQuote(ctx, mock.AnythingOfType("*usecase.QuoteInput")).
		Return(testQuote(), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateTrackingNumber).
		Times(maxTrackingAttempts)

	_, err := fx.service.CreateShipment(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique tracking number")
}

func TestShipmentService_CreateShipment_PriceMismatch(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	input := testCreateShipmentInput("user-1")
	// A stale or tampered total must be rejected before anything is written.
	input.Price.Total = decimal.NewFromInt(100)

	fx.pricing.EXPECT().
		GetQuote(ctx, mock.AnythingOfType("*usecase.QuoteInput")).
		Return(testQuote(), nil)

	_, err := fx.service.CreateShipment(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShipmentService_CreateShipment_UnknownService(t *testing.T) {
	fx := createTestShipmentService(t)

	input := testCreateShipmentInput("user-1")
	input.Service = entity.ServiceType("teleport")

	_, err := fx.service.CreateShipment(context.Background(), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service type")
}

func TestShipmentService_CreateShipment_NonPositiveWeight(t *testing.T) {
	fx := createTestShipmentService(t)

	input := testCreateShipmentInput("user-1")
	input.Package.Weight = decimal.Zero

	_, err := fx.service.CreateShipment(context.Background(), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}

func TestShipmentService_TrackShipment_Found(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	shipmentID := uuid.New()
	shipment := &entity.Shipment{
		ID:             shipmentID,
		TrackingNumber: "CF-ABC12345",
		Status:         entity.StatusInTransit,
	}
	events := []*entity.TrackingEvent{
		{ShipmentID: shipmentID, Status: entity.StatusInTransit},
		{ShipmentID: shipmentID, Status: entity.StatusPending},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)
		eventRepo := mockRepo.NewMockTrackingEventRepository(t)

		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
		factory.EXPECT().TrackingEventRepo().Return(eventRepo)

		// The lookup is case-insensitive: input below is lowercase.
		shipmentRepo.EXPECT().FindByTrackingNumber(ctx, "CF-ABC12345").Return(shipment, nil)
		eventRepo.EXPECT().ListByShipment(ctx, shipmentID).Return(events, nil)
	})

	result, err := fx.service.TrackShipment(ctx, "cf-abc12345")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, shipment, result.Shipment)
	assert.Len(t, result.Events, 2)
}

func TestShipmentService_TrackShipment_Miss(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)

		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
		shipmentRepo.EXPECT().FindByTrackingNumber(ctx, "CF-NOSUCH00").Return(nil, nil)
	})

	result, err := fx.service.TrackShipment(ctx, "CF-NOSUCH00")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestShipmentService_GetUserShipments(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	shipments := []*entity.Shipment{
		{TrackingNumber: "CF-AAAAAAA1"},
		{TrackingNumber: "CF-AAAAAAA2"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)

		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
		shipmentRepo.EXPECT().FindByUser(ctx, "user-1").Return(shipments, nil)
	})

	found, err := fx.service.GetUserShipments(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, shipments, found)
}
