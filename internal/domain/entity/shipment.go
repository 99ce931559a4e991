// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceType is the commercial service level booked for a shipment.
type ServiceType string

const (
	// ServiceExpress is the fastest, most expensive service level.
	ServiceExpress ServiceType = "express"
	// ServiceStandard is the default service level.
	ServiceStandard ServiceType = "standard"
	// ServiceEconomy is the slowest, cheapest service level.
	ServiceEconomy ServiceType = "economy"
)

// IsValid checks if the service type is a known value.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceExpress, ServiceStandard, ServiceEconomy:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the payment state of a shipment booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Address is a postal address with contact details. Sender and recipient are
// structurally identical.
type Address struct {
	Name       string `json:"name" validate:"required"`
	Company    string `json:"company,omitempty"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

// Dimensions are the package measurements in centimetres.
type Dimensions struct {
	Length decimal.Decimal `json:"length" validate:"required"`
	Width  decimal.Decimal `json:"width" validate:"required"`
	Height decimal.Decimal `json:"height" validate:"required"`
}

// Package describes the physical parcel being shipped.
type Package struct {
	Weight            decimal.Decimal `json:"weight" validate:"required"` // kilograms, must be positive
	Dimensions        Dimensions      `json:"dimensions" validate:"required"`
	Description       string          `json:"description" validate:"required"`
	DeclaredValue     decimal.Decimal `json:"declaredValue,omitempty"`
	IsFragile         bool            `json:"isFragile"`
	RequiresSignature bool            `json:"requiresSignature"`
}

// Price is the priced breakdown of a booking. Insurance is optional and zero
// when not taken out.
type Price struct {
	Base      decimal.Decimal `json:"base" validate:"required"`
	Fuel      decimal.Decimal `json:"fuel"`
	Insurance decimal.Decimal `json:"insurance,omitempty"`
	Total     decimal.Decimal `json:"total" validate:"required"`
	Currency  string          `json:"currency" validate:"required,len=3"`
}

// Shipment is the central aggregate of the system. The tracking number is the
// public identity and is immutable after creation; progress is always derived
// from the status table, and the record is never deleted (the tracking event
// log is the audit trail).
type Shipment struct {
	ID                uuid.UUID      `json:"id"`              // Internal identifier, generated by the database.
	TrackingNumber    string         `json:"trackingNumber"`  // Public identifier, format CF-XXXXXXXX, stored uppercase.
	UserID            string         `json:"userId"`          // Owner reference (auth provider UID).
	Status            ShipmentStatus `json:"status"`          // Current lifecycle stage.
	CurrentLocation   string         `json:"currentLocation"` // Free-text last known location.
	Progress          int            `json:"progress"`        // 0-100, derived from Status via the status table.
	Service           ServiceType    `json:"service"`
	Package           Package        `json:"package"`
	Sender            Address        `json:"sender"`
	Recipient         Address        `json:"recipient"`
	Price             Price          `json:"price"`
	PaymentStatus     PaymentStatus  `json:"paymentStatus"`
	PaymentMethod     string         `json:"paymentMethod,omitempty"` // e.g. "wallet"; empty until paid.
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	PickedUpAt        *time.Time     `json:"pickedUpAt,omitempty"`  // Set when the status first enters picked_up.
	DeliveredAt       *time.Time     `json:"deliveredAt,omitempty"` // Set when the status first enters delivered.
}
