// Package usecase defines the application-facing interfaces and their
// input/output models.
package usecase

import (
	"context"
	"time"

	"cargofly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateShipmentInput carries everything needed to book a shipment. The
// struct is validated at the delivery boundary before the usecase runs. The
// price breakdown comes from the caller (who fetched a quote first) and is
// checked against the current rate card before it is stored verbatim.
type CreateShipmentInput struct {
	UserID    string             `json:"-" validate:"required"`
	Service   entity.ServiceType `json:"service" validate:"required"`
	Package   entity.Package     `json:"package" validate:"required"`
	Sender    entity.Address     `json:"sender" validate:"required"`
	Recipient entity.Address     `json:"recipient" validate:"required"`
	Price     entity.Price       `json:"price" validate:"required"`
	Insured   bool               `json:"insured"`
}

// UpdateStatusInput describes one lifecycle transition, performed by staff.
type UpdateStatusInput struct {
	ShipmentID  uuid.UUID             `json:"-"`
	Status      entity.ShipmentStatus `json:"status" validate:"required"`
	Location    string                `json:"location" validate:"required"`
	Description string                `json:"description" validate:"required"`
	ActorUID    string                `json:"-"`
}

// TrackingResult is the public tracking view: the shipment plus its event log
// in newest-first order. Nil when the tracking number matches nothing.
type TrackingResult struct {
	Shipment *entity.Shipment        `json:"shipment"`
	Events   []*entity.TrackingEvent `json:"events"`
}

// Quote is a priced estimate for a prospective booking.
type Quote struct {
	Service      entity.ServiceType `json:"service"`
	Base         decimal.Decimal    `json:"base"`
	Fuel         decimal.Decimal    `json:"fuel"`
	Insurance    decimal.Decimal    `json:"insurance"`
	Total        decimal.Decimal    `json:"total"`
	Currency     string             `json:"currency"`
	EstimatedETA time.Time          `json:"estimatedEta"`
}

// ShipmentUsecase defines the shipment lifecycle use cases.
type ShipmentUsecase interface {
	// CreateShipment books a new shipment and returns its tracking number.
	// The shipment row and the initial tracking event commit atomically.
	CreateShipment(ctx context.Context, input *CreateShipmentInput) (string, error)

	// TrackShipment resolves a tracking number (case-insensitive) to the
	// shipment and its event history. A miss returns (nil, nil): the caller
	// renders a not-found state.
	TrackShipment(ctx context.Context, trackingNumber string) (*TrackingResult, error)

	// GetUserShipments returns all of a user's shipments, newest first.
	GetUserShipments(ctx context.Context, userID string) ([]*entity.Shipment, error)

	// UpdateShipmentStatus moves a shipment through its lifecycle and appends
	// the transition event atomically. Restricted to staff and admin actors.
	UpdateShipmentStatus(ctx context.Context, input *UpdateStatusInput) error
}
