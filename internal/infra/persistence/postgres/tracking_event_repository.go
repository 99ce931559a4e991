// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trackingEventRepository implements the repository.TrackingEventRepository interface.
type trackingEventRepository struct {
	db *gorm.DB
}

// NewTrackingEventRepository is the constructor for trackingEventRepository.
func NewTrackingEventRepository(db *gorm.DB) repository.TrackingEventRepository {
	return &trackingEventRepository{
		db: db,
	}
}

// Append writes a new immutable event to a shipment's log.
func (repo *trackingEventRepository) Append(ctx context.Context, event *entity.TrackingEvent) error {
	eventM := fromTrackingEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShipmentNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append tracking event")
	}

	event.ID = eventM.ID

	return nil
}

// ListByShipment returns a shipment's events newest-first. Consumers rendering
// a forward-moving timeline reverse the slice themselves.
func (repo *trackingEventRepository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error) {
	var eventMs []model.TrackingEventModel

	if err := repo.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("timestamp DESC").
		Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tracking events")
	}

	events := make([]*entity.TrackingEvent, 0, len(eventMs))
	for i := range eventMs {
		events = append(events, toTrackingEventDomain(&eventMs[i]))
	}

	return events, nil
}

// toTrackingEventDomain converts a GORM TrackingEventModel to a domain TrackingEvent entity.
func toTrackingEventDomain(data *model.TrackingEventModel) *entity.TrackingEvent {
	if data == nil {
		return nil
	}

	return &entity.TrackingEvent{
		ID:          data.ID,
		ShipmentID:  data.ShipmentID,
		Status:      entity.ShipmentStatus(data.Status),
		Location:    data.Location,
		Description: data.Description,
		Timestamp:   data.Timestamp,
		CreatedBy:   data.CreatedBy,
	}
}

// fromTrackingEventDomain converts a domain TrackingEvent entity to a GORM TrackingEventModel.
func fromTrackingEventDomain(data *entity.TrackingEvent) *model.TrackingEventModel {
	if data == nil {
		return nil
	}

	return &model.TrackingEventModel{
		ID:          data.ID,
		ShipmentID:  data.ShipmentID,
		Status:      data.Status.String(),
		Location:    data.Location,
		Description: data.Description,
		Timestamp:   data.Timestamp,
		CreatedBy:   data.CreatedBy,
	}
}
