package impl

import (
	"context"
	"log/slog"
	"time"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/usecase"

	"github.com/pkg/errors"
)

// maxTrackingAttempts bounds the retry loop when a freshly generated tracking
// number collides with an existing one. With 36^8 possible codes this is
// effectively never reached.
const maxTrackingAttempts = 5

// initialEventDescription is written as the first tracking event of every shipment.
const initialEventDescription = "Shipment created and awaiting pickup"

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	txManager repository.TransactionManager
	pricing   usecase.PricingUsecase
	logger    *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(
	txManager repository.TransactionManager,
	pricing usecase.PricingUsecase,
	logger *slog.Logger,
) usecase.ShipmentUsecase {
	return &shipmentService{
		txManager: txManager,
		pricing:   pricing,
		logger:    logger,
	}
}

// CreateShipment books a new shipment: it checks the caller-submitted price
// against a fresh rate-card quote, generates a tracking number, and writes
// the shipment row together with its initial tracking event in one
// transaction. A tracking number collision rolls the transaction back and the
// whole booking is retried with a fresh number.
func (srv *shipmentService) CreateShipment(ctx context.Context, input *usecase.CreateShipmentInput) (string, error) {
	if !input.Service.IsValid() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown service type " + string(input.Service))
	}
	if !input.Package.Weight.IsPositive() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("package weight must be greater than zero")
	}

	quote, err := srv.pricing.GetQuote(ctx, &usecase.QuoteInput{
		Service:       input.Service,
		Weight:        input.Package.Weight,
		DeclaredValue: input.Package.DeclaredValue,
		Insured:       input.Insured,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to price shipment")
	}
	if !priceMatchesQuote(&input.Price, quote) {
		return "", domainerrors.ErrValidationFailed.WithDetails("submitted price does not match the current rate card")
	}

	progress, err := entity.StatusPending.Progress()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve initial progress")
	}

	shipment := &entity.Shipment{
		UserID:            input.UserID,
		Status:            entity.StatusPending,
		CurrentLocation:   input.Sender.City + ", " + input.Sender.Country,
		Progress:          progress,
		Service:           input.Service,
		Package:           input.Package,
		Sender:            input.Sender,
		Recipient:         input.Recipient,
		Price:             input.Price,
		PaymentStatus:     entity.PaymentPending,
		EstimatedDelivery: quote.EstimatedETA,
	}

	for attempt := 1; attempt <= maxTrackingAttempts; attempt++ {
		shipment.TrackingNumber = entity.GenerateTrackingNumber()

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.ShipmentRepo().Create(ctx, shipment); err != nil {
				return err
			}

			event := &entity.TrackingEvent{
				ShipmentID:  shipment.ID,
				Status:      entity.StatusPending,
				Location:    shipment.CurrentLocation,
				Description: initialEventDescription,
				Timestamp:   time.Now(),
			}

			return repoFactory.TrackingEventRepo().Append(ctx, event)
		})
		if errors.Is(err, repository.ErrDuplicateTrackingNumber) {
			srv.logger.Warn("Tracking number collision, regenerating",
				"trackingNumber", shipment.TrackingNumber,
				"attempt", attempt,
			)

			continue
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to create shipment")
		}

		srv.logger.Info("Shipment created",
			"trackingNumber", shipment.TrackingNumber,
			"userID", input.UserID,
			"service", input.Service,
		)

		return shipment.TrackingNumber, nil
	}

	return "", domainerrors.ErrInternalError.WrapMessage("could not allocate a unique tracking number")
}

// priceMatchesQuote reports whether the caller-submitted price breakdown
// equals the freshly computed quote, field by field.
func priceMatchesQuote(price *entity.Price, quote *usecase.Quote) bool {
	return price.Base.Equal(quote.Base) &&
		price.Fuel.Equal(quote.Fuel) &&
		price.Insurance.Equal(quote.Insurance) &&
		price.Total.Equal(quote.Total) &&
		price.Currency == quote.Currency
}

// TrackShipment resolves a tracking number to the shipment and its event
// history. The lookup is case-insensitive and a miss returns (nil, nil).
func (srv *shipmentService) TrackShipment(ctx context.Context, trackingNumber string) (*usecase.TrackingResult, error) {
	normalized := entity.NormalizeTrackingNumber(trackingNumber)

	var result *usecase.TrackingResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := repoFactory.ShipmentRepo().FindByTrackingNumber(ctx, normalized)
		if err != nil {
			return errors.Wrap(err, "failed to find shipment by tracking number")
		}
		if shipment == nil {
			return nil
		}

		events, err := repoFactory.TrackingEventRepo().ListByShipment(ctx, shipment.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list tracking events")
		}

		result = &usecase.TrackingResult{
			Shipment: shipment,
			Events:   events,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to track shipment")
	}

	return result, nil
}

// GetUserShipments returns all of a user's shipments, newest first.
func (srv *shipmentService) GetUserShipments(ctx context.Context, userID string) ([]*entity.Shipment, error) {
	var shipments []*entity.Shipment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShipmentRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find shipments")
		}
		shipments = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user shipments")
	}

	return shipments, nil
}

// UpdateShipmentStatus moves a shipment through its lifecycle. The actor must
// hold the staff or admin role; the transition must be allowed by the status
// table; the row update and the transition event commit atomically.
func (srv *shipmentService) UpdateShipmentStatus(ctx context.Context, input *usecase.UpdateStatusInput) error {
	if !input.Status.IsValid() {
		return domainerrors.ErrInvalidStatus.WrapMessage("status " + input.Status.String())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := repoFactory.UserRepo().FindByUID(ctx, input.ActorUID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrForbidden, "actor has no profile")
			}

			return errors.Wrap(err, "failed to load actor")
		}
		if !actor.Role.CanUpdateShipments() {
			return errors.Wrap(domainerrors.ErrForbidden, "only staff can update shipment status")
		}

		shipment, err := repoFactory.ShipmentRepo().FindByID(ctx, input.ShipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return errors.Wrap(domainerrors.ErrShipmentNotFound, "shipment not found")
			}

			return errors.Wrap(err, "failed to load shipment")
		}

		if !shipment.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				"cannot move from " + shipment.Status.String() + " to " + input.Status.String(),
			)
		}

		progress, err := input.Status.Progress()
		if err != nil {
			return errors.Wrap(err, "failed to resolve progress")
		}

		now := time.Now()
		shipment.Status = input.Status
		shipment.CurrentLocation = input.Location
		shipment.Progress = progress

		switch input.Status {
		case entity.StatusPickedUp:
			shipment.PickedUpAt = &now
		case entity.StatusDelivered:
			shipment.DeliveredAt = &now
		}

		if err := repoFactory.ShipmentRepo().UpdateStatus(ctx, shipment); err != nil {
			return errors.Wrap(err, "failed to update shipment status")
		}

		event := &entity.TrackingEvent{
			ShipmentID:  shipment.ID,
			Status:      input.Status,
			Location:    input.Location,
			Description: input.Description,
			Timestamp:   now,
			CreatedBy:   input.ActorUID,
		}

		return repoFactory.TrackingEventRepo().Append(ctx, event)
	})
	if err != nil {
		return errors.Wrap(err, "failed to update shipment status")
	}

	srv.logger.Info("Shipment status updated",
		"shipmentID", input.ShipmentID,
		"status", input.Status,
		"actorUID", input.ActorUID,
	)

	return nil
}
