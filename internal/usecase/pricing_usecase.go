package usecase

import (
	"context"

	"cargofly/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// QuoteInput describes a prospective booking to price.
type QuoteInput struct {
	Service       entity.ServiceType `json:"service" validate:"required"`
	Weight        decimal.Decimal    `json:"weight" validate:"required"`
	DeclaredValue decimal.Decimal    `json:"declaredValue"`
	Insured       bool               `json:"insured"`
}

// PricingUsecase computes quotes from the configured rate card.
type PricingUsecase interface {
	// GetQuote prices a prospective booking: base = rate x weight, plus the
	// fuel surcharge percentage and, when insured, a percentage of the
	// declared value.
	GetQuote(ctx context.Context, input *QuoteInput) (*Quote, error)
}
