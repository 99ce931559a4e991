package impl

import (
	"context"
	"testing"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	mockRepo "cargofly/internal/mocks/repository"
	"cargofly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUpdateStatusInput(shipmentID uuid.UUID, status entity.ShipmentStatus) *usecase.UpdateStatusInput {
	return &usecase.UpdateStatusInput{
		ShipmentID:  shipmentID,
		Status:      status,
		Location:    "Accra Hub",
		Description: "Arrived at regional sorting hub",
		ActorUID:    "staff-1",
	}
}

func TestShipmentService_UpdateShipmentStatus_Success(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	shipmentID := uuid.New()
	input := testUpdateStatusInput(shipmentID, entity.StatusAtHub)

	staff := &entity.User{UID: "staff-1", Role: entity.RoleStaff}
	shipment := &entity.Shipment{
		ID:             shipmentID,
		TrackingNumber: "CF-ABC12345",
		Status:         entity.StatusInTransit,
		Progress:       50,
	}

	var updated *entity.Shipment
	var appended *entity.TrackingEvent

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)
		eventRepo := mockRepo.NewMockTrackingEventRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
		factory.EXPECT().TrackingEventRepo().Return(eventRepo)

		userRepo.EXPECT().FindByUID(ctx, "staff-1").Return(staff, nil)
		shipmentRepo.EXPECT().FindByID(ctx, shipmentID).Return(shipment, nil)
		shipmentRepo.EXPECT().
			UpdateStatus(ctx, shipment).
			RunAndReturn(func(ctx context.Context, s *entity.Shipment) error {
				updated = s

				return nil
			})
		eventRepo.EXPECT().
			Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
			RunAndReturn(func(ctx context.Context, event *entity.TrackingEvent) error {
				appended = event

				return nil
			})
	})

	err := fx.service.UpdateShipmentStatus(ctx, input)

	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusAtHub, updated.Status)
	assert.Equal(t, 65, updated.Progress)
	assert.Equal(t, "Accra Hub", updated.CurrentLocation)
	assert.Nil(t, updated.PickedUpAt)
	assert.Nil(t, updated.DeliveredAt)

	require.NotNil(t, appended)
	assert.Equal(t, shipmentID, appended.ShipmentID)
	assert.Equal(t, entity.StatusAtHub, appended.Status)
	assert.Equal(t, "staff-1", appended.CreatedBy)
}

func TestShipmentService_UpdateShipmentStatus_SetsLifecycleTimestamps(t *testing.T) {
	cases := []struct {
		name      string
		from      entity.ShipmentStatus
		to        entity.ShipmentStatus
		pickedUp  bool
		delivered bool
	}{
		{"picked up stamps pickup time", entity.StatusConfirmed, entity.StatusPickedUp, true, false},
		{"delivered stamps delivery time", entity.StatusOutForDelivery, entity.StatusDelivered, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestShipmentService(t)

			ctx := context.Background()
			shipmentID := uuid.New()
			input := testUpdateStatusInput(shipmentID, tc.to)

			shipment := &entity.Shipment{ID: shipmentID, Status: tc.from}

			var updated *entity.Shipment

			fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
				userRepo := mockRepo.NewMockUserRepository(t)
				shipmentRepo := mockRepo.NewMockShipmentRepository(t)
				eventRepo := mockRepo.NewMockTrackingEventRepository(t)

				factory.EXPECT().UserRepo().Return(userRepo)
				factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
				factory.EXPECT().TrackingEventRepo().Return(eventRepo)

				userRepo.EXPECT().FindByUID(ctx, "staff-1").Return(&entity.User{UID: "staff-1", Role: entity.RoleAdmin}, nil)
				shipmentRepo.EXPECT().FindByID(ctx, shipmentID).Return(shipment, nil)
				shipmentRepo.EXPECT().
					UpdateStatus(ctx, shipment).
					RunAndReturn(func(ctx context.Context, s *entity.Shipment) error {
						updated = s

						return nil
					})
				eventRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).Return(nil)
			})

			err := fx.service.UpdateShipmentStatus(ctx, input)

			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, tc.pickedUp, updated.PickedUpAt != nil)
			assert.Equal(t, tc.delivered, updated.DeliveredAt != nil)
		})
	}
}

func TestShipmentService_UpdateShipmentStatus_CustomerForbidden(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	input := testUpdateStatusInput(uuid.New(), entity.StatusConfirmed)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByUID(ctx, "staff-1").Return(&entity.User{UID: "staff-1", Role: entity.RoleCustomer}, nil)
	})

	err := fx.service.UpdateShipmentStatus(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShipmentService_UpdateShipmentStatus_InvalidTransition(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	shipmentID := uuid.New()
	// Backwards: delivered -> confirmed must be rejected.
	input := testUpdateStatusInput(shipmentID, entity.StatusConfirmed)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)

		userRepo.EXPECT().FindByUID(ctx, "staff-1").Return(&entity.User{UID: "staff-1", Role: entity.RoleStaff}, nil)
		shipmentRepo.EXPECT().FindByID(ctx, shipmentID).Return(&entity.Shipment{ID: shipmentID, Status: entity.StatusDelivered}, nil)
	})

	err := fx.service.UpdateShipmentStatus(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestShipmentService_UpdateShipmentStatus_UnknownStatus(t *testing.T) {
	fx := createTestShipmentService(t)

	input := testUpdateStatusInput(uuid.New(), entity.ShipmentStatus("lost"))

	err := fx.service.UpdateShipmentStatus(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestShipmentService_UpdateShipmentStatus_ShipmentNotFound(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	shipmentID := uuid.New()
	input := testUpdateStatusInput(shipmentID, entity.StatusConfirmed)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ShipmentRepo().Return(shipmentRepo)

		userRepo.EXPECT().FindByUID(ctx, "staff-1").Return(&entity.User{UID: "staff-1", Role: entity.RoleStaff}, nil)
		shipmentRepo.EXPECT().FindByID(ctx, shipmentID).Return(nil, repository.ErrShipmentNotFound)
	})

	err := fx.service.UpdateShipmentStatus(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShipmentNotFound))
}

func TestShipmentService_StatusUpdates_EventLogSequence(t *testing.T) {
	fx := createTestShipmentService(t)

	ctx := context.Background()
	shipmentID := uuid.New()
	staff := &entity.User{UID: "staff-1", Role: entity.RoleStaff}

	var stored *entity.Shipment
	var events []*entity.TrackingEvent

	setup := func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		shipmentRepo := mockRepo.NewMockShipmentRepository(t)
		eventRepo := mockRepo.NewMockTrackingEventRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo).Maybe()
		factory.EXPECT().ShipmentRepo().Return(shipmentRepo).Maybe()
		factory.EXPECT().TrackingEventRepo().Return(eventRepo).Maybe()

		userRepo.EXPECT().
			FindByUID(ctx, "staff-1").
			Return(staff, nil).
			Maybe()
		shipmentRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Shipment")).
			RunAndReturn(func(ctx context.Context, shipment *entity.Shipment) error {
				shipment.ID = shipmentID
				stored = shipment

				return nil
			}).
			Maybe()
		shipmentRepo.EXPECT().
			FindByID(ctx, shipmentID).
			RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
				return stored, nil
			}).
			Maybe()
		shipmentRepo.EXPECT().
			UpdateStatus(ctx, mock.AnythingOfType("*entity.Shipment")).
			Return(nil).
			Maybe()
		shipmentRepo.EXPECT().
			FindByTrackingNumber(ctx, mock.AnythingOfType("string")).
			RunAndReturn(func(ctx context.Context, trackingNumber string) (*entity.Shipment, error) {
				return stored, nil
			}).
			Maybe()
		eventRepo.EXPECT().
			Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
			RunAndReturn(func(ctx context.Context, event *entity.TrackingEvent) error {
				events = append([]*entity.TrackingEvent{event}, events...)

				return nil
			}).
			Maybe()
		eventRepo.EXPECT().
			ListByShipment(ctx, shipmentID).
			RunAndReturn(func(ctx context.Context, id uuid.UUID) ([]*entity.TrackingEvent, error) {
				return events, nil
			}).
			Maybe()
	}

	// One booking, four status updates, one tracking read.
	for range 6 {
		fx.onExecute(ctx, setup)
	}

	fx.pricing.EXPECT().
		GetQuote(ctx, mock.AnythingOfType("*usecase.QuoteInput")).
		Return(testQuote(), nil)

	trackingNumber, err := fx.service.CreateShipment(ctx, testCreateShipmentInput("user-1"))
	require.NoError(t, err)

	progression := []entity.ShipmentStatus{
		entity.StatusConfirmed,
		entity.StatusPickedUp,
		entity.StatusInTransit,
		entity.StatusAtHub,
	}
	for _, status := range progression {
		require.NoError(t, fx.service.UpdateShipmentStatus(ctx, testUpdateStatusInput(shipmentID, status)))
	}

	result, err := fx.service.TrackShipment(ctx, trackingNumber)

	require.NoError(t, err)
	require.NotNil(t, result)

	// One creation event plus one per update, newest first; the latest event
	// always matches the shipment's current status.
	require.Len(t, result.Events, 1+len(progression))
	assert.Equal(t, entity.StatusAtHub, result.Shipment.Status)
	assert.Equal(t, result.Shipment.Status, result.Events[0].Status)
	assert.Equal(t, entity.StatusPending, result.Events[len(result.Events)-1].Status)
	for i, event := range result.Events {
		assert.Equal(t, shipmentID, event.ShipmentID, "event %d", i)
	}
}
