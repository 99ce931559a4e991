package handler

import (
	"log/slog"
	"net/http"

	"cargofly/internal/delivery/http/response"
	"cargofly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuoteHandler holds dependencies for pricing handlers.
type QuoteHandler struct {
	uc     usecase.PricingUsecase
	logger *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(uc usecase.PricingUsecase, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetQuote prices a prospective booking. The endpoint is public; no account
// is needed to get an estimate.
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	var input usecase.QuoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.uc.GetQuote(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}
