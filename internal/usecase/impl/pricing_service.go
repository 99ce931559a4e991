// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"cargofly/config"
	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/usecase"

	"github.com/shopspring/decimal"
)

// Estimated transit time per service level, measured from booking. The outer
// bound of the advertised delivery window is used.
const (
	expressTransitDays  = 2
	standardTransitDays = 5
	economyTransitDays  = 10
)

var percentDivisor = decimal.NewFromInt(100)

// pricingService implements the PricingUsecase interface from the configured
// rate card.
type pricingService struct {
	cfg    *config.ShippingConfig
	logger *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(
	cfg *config.ShippingConfig,
	logger *slog.Logger,
) usecase.PricingUsecase {
	return &pricingService{
		cfg:    cfg,
		logger: logger,
	}
}

// GetQuote prices a prospective booking from the rate card.
func (srv *pricingService) GetQuote(_ context.Context, input *usecase.QuoteInput) (*usecase.Quote, error) {
	if !input.Service.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown service type " + string(input.Service))
	}
	if !input.Weight.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("weight must be greater than zero")
	}
	if input.Insured && !input.DeclaredValue.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("insured shipments need a positive declared value")
	}

	rate, days := srv.rateFor(input.Service)

	base := rate.Mul(input.Weight)
	fuel := base.Mul(srv.cfg.FuelSurchargePercent).Div(percentDivisor)

	insurance := decimal.Zero
	if input.Insured {
		insurance = input.DeclaredValue.Mul(srv.cfg.InsurancePercent).Div(percentDivisor)
	}

	quote := &usecase.Quote{
		Service:      input.Service,
		Base:         base,
		Fuel:         fuel,
		Insurance:    insurance,
		Total:        base.Add(fuel).Add(insurance),
		Currency:     srv.cfg.Currency,
		EstimatedETA: time.Now().AddDate(0, 0, days),
	}

	srv.logger.Debug("Quote computed",
		"service", input.Service,
		"weight", input.Weight,
		"total", quote.Total,
	)

	return quote, nil
}

// rateFor returns the per-kilogram rate and transit days for the service level.
func (srv *pricingService) rateFor(service entity.ServiceType) (decimal.Decimal, int) {
	switch service {
	case entity.ServiceExpress:
		return srv.cfg.ExpressRatePerKg, expressTransitDays
	case entity.ServiceEconomy:
		return srv.cfg.EconomyRatePerKg, economyTransitDays
	default:
		return srv.cfg.StandardRatePerKg, standardTransitDays
	}
}
