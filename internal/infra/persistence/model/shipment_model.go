package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressModel is embedded twice into ShipmentModel with the sender_ and
// recipient_ column prefixes.
type AddressModel struct {
	Name       string `gorm:"type:varchar(100);not null"`
	Company    string `gorm:"type:varchar(100)"`
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(20);not null"`
	Country    string `gorm:"type:varchar(100);not null"`
	Phone      string `gorm:"type:varchar(30);not null"`
	Email      string `gorm:"type:varchar(255)"`
}

// ShipmentModel mirrors the 'shipments' table. The tracking number carries a
// unique index; lookups normalize to uppercase before querying it.
type ShipmentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TrackingNumber  string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	UserID          string    `gorm:"type:varchar(128);index;not null"`
	Status          string    `gorm:"type:varchar(32);not null"`
	CurrentLocation string    `gorm:"type:varchar(255)"`
	Progress        int       `gorm:"not null"`
	Service         string    `gorm:"type:varchar(16);not null"`

	PackageWeight       decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	PackageLength       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PackageWidth        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PackageHeight       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PackageDescription  string          `gorm:"type:text;not null"`
	PackageValue        decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsFragile           bool            `gorm:"not null;default:false"`
	RequiresSignature   bool            `gorm:"not null;default:false"`

	Sender    AddressModel `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient AddressModel `gorm:"embedded;embeddedPrefix:recipient_"`

	PriceBase      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceFuel      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceInsurance decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null"`

	PaymentStatus     string `gorm:"type:varchar(16);not null"`
	PaymentMethod     string `gorm:"type:varchar(32)"`
	EstimatedDelivery time.Time
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time

	TrackingEvents []TrackingEventModel `gorm:"foreignKey:ShipmentID"`
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}
