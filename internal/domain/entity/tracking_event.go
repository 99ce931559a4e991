package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is one immutable log entry in a shipment's status history.
// One event is written at shipment creation and one on every status
// transition; events are never updated or deleted, so the set of events
// ordered by timestamp reconstructs the full history.
type TrackingEvent struct {
	ID          uuid.UUID      `json:"id"`                  // System-generated identifier.
	ShipmentID  uuid.UUID      `json:"shipmentId"`          // The shipment this event belongs to.
	Status      ShipmentStatus `json:"status"`              // Status at the time of the event.
	Location    string         `json:"location"`            // Free-text location of the event.
	Description string         `json:"description"`         // Human-readable description of the transition.
	Timestamp   time.Time      `json:"timestamp"`           // When the transition happened.
	CreatedBy   string         `json:"createdBy,omitempty"` // Optional actor (staff UID); empty for system events.
}
