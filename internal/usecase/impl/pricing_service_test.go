package impl

import (
	"context"
	"testing"
	"time"

	"cargofly/config"
	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShippingConfig() *config.ShippingConfig {
	return &config.ShippingConfig{
		ExpressRatePerKg:     decimal.NewFromInt(85),
		StandardRatePerKg:    decimal.NewFromInt(45),
		EconomyRatePerKg:     decimal.NewFromInt(25),
		FuelSurchargePercent: decimal.NewFromInt(12),
		InsurancePercent:     decimal.RequireFromString("1.5"),
		Currency:             "USD",
	}
}

func createTestPricingService(t *testing.T) usecase.PricingUsecase {
	t.Helper()

	return NewPricingService(testShippingConfig(), newTestLogger())
}

func TestPricingService_GetQuote_Standard(t *testing.T) {
	service := createTestPricingService(t)

	quote, err := service.GetQuote(context.Background(), &usecase.QuoteInput{
		Service: entity.ServiceStandard,
		Weight:  decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ServiceStandard, quote.Service)
	assert.True(t, decimal.NewFromInt(450).Equal(quote.Base), "base = 45 x 10, got %s", quote.Base)
	assert.True(t, decimal.NewFromInt(54).Equal(quote.Fuel), "fuel = 12%% of 450, got %s", quote.Fuel)
	assert.True(t, quote.Insurance.IsZero())
	assert.True(t, decimal.NewFromInt(504).Equal(quote.Total), "total, got %s", quote.Total)
	assert.Equal(t, "USD", quote.Currency)
}

func TestPricingService_GetQuote_ExpressInsured(t *testing.T) {
	service := createTestPricingService(t)

	quote, err := service.GetQuote(context.Background(), &usecase.QuoteInput{
		Service:       entity.ServiceExpress,
		Weight:        decimal.NewFromInt(4),
		DeclaredValue: decimal.NewFromInt(2000),
		Insured:       true,
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(340).Equal(quote.Base), "base = 85 x 4, got %s", quote.Base)
	assert.True(t, decimal.RequireFromString("40.8").Equal(quote.Fuel), "fuel = 12%% of 340, got %s", quote.Fuel)
	assert.True(t, decimal.NewFromInt(30).Equal(quote.Insurance), "insurance = 1.5%% of 2000, got %s", quote.Insurance)
	assert.True(t, decimal.RequireFromString("410.8").Equal(quote.Total), "total, got %s", quote.Total)
}

func TestPricingService_GetQuote_EstimatedETA(t *testing.T) {
	service := createTestPricingService(t)

	cases := []struct {
		service entity.ServiceType
		days    int
	}{
		{service: entity.ServiceExpress, days: 2},
		{service: entity.ServiceStandard, days: 5},
		{service: entity.ServiceEconomy, days: 10},
	}

	for _, testCase := range cases {
		t.Run(string(testCase.service), func(t *testing.T) {
			before := time.Now().AddDate(0, 0, testCase.days).Add(-time.Minute)

			quote, err := service.GetQuote(context.Background(), &usecase.QuoteInput{
				Service: testCase.service,
				Weight:  decimal.NewFromInt(1),
			})

			after := time.Now().AddDate(0, 0, testCase.days).Add(time.Minute)

			require.NoError(t, err)
			assert.True(t, quote.EstimatedETA.After(before))
			assert.True(t, quote.EstimatedETA.Before(after))
		})
	}
}

func TestPricingService_GetQuote_UnknownService(t *testing.T) {
	service := createTestPricingService(t)

	quote, err := service.GetQuote(context.Background(), &usecase.QuoteInput{
		Service: entity.ServiceType("overnight"),
		Weight:  decimal.NewFromInt(1),
	})

	require.Error(t, err)
	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPricingService_GetQuote_NonPositiveWeight(t *testing.T) {
	service := createTestPricingService(t)

	for _, weight := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		quote, err := service.GetQuote(context.Background(), &usecase.QuoteInput{
			Service: entity.ServiceStandard,
			Weight:  weight,
		})

		require.Error(t, err)
		assert.Nil(t, quote)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestPricingService_GetQuote_InsuredNeedsDeclaredValue(t *testing.T) {
	service := createTestPricingService(t)

	quote, err := service.GetQuote(context.Background(), &usecase.QuoteInput{
		Service: entity.ServiceEconomy,
		Weight:  decimal.NewFromInt(2),
		Insured: true,
	})

	require.Error(t, err)
	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
