package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cargofly/internal/delivery/http/validator"
	"cargofly/internal/domain/entity"
	mockUsecase "cargofly/internal/mocks/usecase"
	"cargofly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newHandlerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShipmentHandler_Track_Found(t *testing.T) {
	uc := mockUsecase.NewMockShipmentUsecase(t)
	handler := &ShipmentHandler{uc: uc, logger: newHandlerTestLogger()}

	result := &usecase.TrackingResult{
		Shipment: &entity.Shipment{
			TrackingNumber:  "CF-ABC12345",
			Status:          entity.StatusInTransit,
			Progress:        50,
			CurrentLocation: "Accra, Ghana",
		},
		Events: []*entity.TrackingEvent{
			{
				Status:      entity.StatusInTransit,
				Description: "Departed origin facility",
				Location:    "Lagos, Nigeria",
				Timestamp:   time.Now(),
			},
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/track/CF-ABC12345", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("trackingNumber")
	c.SetParamValues("CF-ABC12345")

	uc.EXPECT().TrackShipment(req.Context(), "CF-ABC12345").Return(result, nil)

	require.NoError(t, handler.Track(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"trackingNumber":"CF-ABC12345"`)
	assert.Contains(t, body, `"currentLocation":"Accra, Ghana"`)
	assert.Contains(t, body, "Departed origin facility")
}

func TestShipmentHandler_Track_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockShipmentUsecase(t)
	handler := &ShipmentHandler{uc: uc, logger: newHandlerTestLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/track/CF-MISSING1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("trackingNumber")
	c.SetParamValues("CF-MISSING1")

	uc.EXPECT().TrackShipment(req.Context(), "CF-MISSING1").Return(nil, nil)

	require.NoError(t, handler.Track(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "SHIPMENT_NOT_FOUND")
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	uc := mockUsecase.NewMockPricingUsecase(t)
	handler := &QuoteHandler{uc: uc, logger: newHandlerTestLogger()}

	quote := &usecase.Quote{
		Service:  entity.ServiceStandard,
		Currency: "USD",
	}

	e := newTestEcho()
	payload := `{"service":"standard","weight":"10"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		GetQuote(req.Context(), mock.AnythingOfType("*usecase.QuoteInput")).
		Return(quote, nil)

	require.NoError(t, handler.GetQuote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":"USD"`)
}
