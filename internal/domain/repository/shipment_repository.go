// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cargofly/internal/domain/entity"
	"cargofly/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shipment persistence.
var (
	// ErrShipmentNotFound is returned when a shipment lookup by internal ID misses.
	// Tracking-number lookups never return it; they report a miss as (nil, nil)
	// so callers render a not-found state instead of failing.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrDuplicateTrackingNumber is returned when an insert collides with an
	// existing tracking number. The caller retries with a fresh number.
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
)

// ShipmentRepository defines the standard operations for shipment persistence.
type ShipmentRepository interface {
	// Create persists a new shipment. Returns ErrDuplicateTrackingNumber when
	// the generated tracking number collides with an existing record.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// FindByID retrieves a shipment by its internal identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)

	// FindByTrackingNumber retrieves a shipment by its normalized (uppercase)
	// tracking number. A miss returns (nil, nil), not an error.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Shipment, error)

	// FindByUser retrieves all shipments owned by a user, newest first by
	// creation time.
	FindByUser(ctx context.Context, userID string) ([]*entity.Shipment, error)

	// UpdateStatus applies a status transition: status, current location,
	// derived progress and updatedAt, plus pickedUpAt/deliveredAt when the new
	// status is picked_up/delivered. Shipments are never deleted.
	UpdateStatus(ctx context.Context, shipment *entity.Shipment) error

	// UpdatePayment records the payment state and method after a wallet charge.
	UpdatePayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, method string) error
}
