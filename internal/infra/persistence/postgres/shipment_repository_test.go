package postgres

import (
	"testing"
	"time"

	"cargofly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentMapping_RoundTrip(t *testing.T) {
	pickedUp := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

	shipment := &entity.Shipment{
		ID:              uuid.New(),
		TrackingNumber:  "CF-ABC12345",
		UserID:          "user-1",
		Status:          entity.StatusInTransit,
		CurrentLocation: "Accra, Ghana",
		Progress:        50,
		Service:         entity.ServiceStandard,
		Package: entity.Package{
			Weight: decimal.RequireFromString("10.5"),
			Dimensions: entity.Dimensions{
				Length: decimal.NewFromInt(40),
				Width:  decimal.NewFromInt(30),
				Height: decimal.NewFromInt(20),
			},
			Description:       "Machine parts",
			DeclaredValue:     decimal.NewFromInt(2000),
			IsFragile:         true,
			RequiresSignature: true,
		},
		Sender: entity.Address{
			Name:       "Ada Obi",
			Company:    "Acme Cargo",
			Street:     "12 Marina Road",
			City:       "Lagos",
			State:      "Lagos",
			PostalCode: "100001",
			Country:    "Nigeria",
			Phone:      "+2348000000000",
			Email:      "ada@example.com",
		},
		Recipient: entity.Address{
			Name:       "Kofi Mensah",
			Street:     "5 Independence Ave",
			City:       "Accra",
			State:      "Greater Accra",
			PostalCode: "GA-000",
			Country:    "Ghana",
			Phone:      "+233200000000",
		},
		Price: entity.Price{
			Base:      decimal.RequireFromString("472.50"),
			Fuel:      decimal.RequireFromString("56.70"),
			Insurance: decimal.NewFromInt(30),
			Total:     decimal.RequireFromString("559.20"),
			Currency:  "USD",
		},
		PaymentStatus:     entity.PaymentPaid,
		PaymentMethod:     "wallet",
		EstimatedDelivery: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		PickedUpAt:        &pickedUp,
	}

	got := toShipmentDomain(fromShipmentDomain(shipment))
	require.NotNil(t, got)

	// CreatedAt/UpdatedAt are owned by the database and are not carried
	// through the write-side mapping.
	assert.Equal(t, shipment, got)
}

func TestShipmentMapping_Nil(t *testing.T) {
	assert.Nil(t, toShipmentDomain(nil))
	assert.Nil(t, fromShipmentDomain(nil))
}
