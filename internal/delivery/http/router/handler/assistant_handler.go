package handler

import (
	"log/slog"
	"net/http"

	"cargofly/internal/delivery/http/response"
	"cargofly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdviceRequest is the body for a free-form assistant question.
type AdviceRequest struct {
	Question string `json:"question" validate:"required"`
}

// AssistantHandler holds dependencies for AI assistant handlers.
type AssistantHandler struct {
	uc     usecase.AssistantUsecase
	logger *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAdvice answers a free-form logistics question. The assistant degrades to
// a fallback answer on model errors, so this endpoint never fails with a 5xx
// for model trouble.
func (h *AssistantHandler) GetAdvice(c echo.Context) error {
	var req AdviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advice input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	answer := h.uc.GetLogisticsAdvice(c.Request().Context(), req.Question)

	return response.Success(c, http.StatusOK, map[string]string{"answer": answer}, "")
}

// SummarizeShipment produces a status-and-risk summary for a tracked shipment.
func (h *AssistantHandler) SummarizeShipment(c echo.Context) error {
	trackingNumber := c.Param("trackingNumber")

	summary, found := h.uc.SummarizeShipment(c.Request().Context(), trackingNumber)
	if !found {
		return response.NotFound(c, "SHIPMENT_NOT_FOUND", "No shipment matches this tracking number")
	}

	return response.Success(c, http.StatusOK, map[string]string{"summary": summary}, "")
}
