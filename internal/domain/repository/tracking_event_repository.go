// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cargofly/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingEventRepository defines the append-only tracking event log.
// Events are immutable: there is deliberately no update or delete operation.
type TrackingEventRepository interface {
	// Append writes a new event to a shipment's log.
	Append(ctx context.Context, event *entity.TrackingEvent) error

	// ListByShipment returns all events for a shipment in reverse-chronological
	// (newest-first) order. UI consumers reverse the slice when rendering a
	// forward-moving timeline; this ordering is a stable contract.
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error)
}
