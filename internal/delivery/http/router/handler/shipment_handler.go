// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"cargofly/internal/delivery/http/middleware"
	"cargofly/internal/delivery/http/response"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShipmentHandler holds dependencies for shipment-related handlers.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateShipment handles the shipment booking request.
func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	var input usecase.CreateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}
	input.UserID = middleware.UIDFromContext(c)

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	trackingNumber, err := h.uc.CreateShipment(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"trackingNumber": trackingNumber,
	}, "Shipment created successfully")
}

// ListShipments returns the authenticated user's shipments, newest first.
func (h *ShipmentHandler) ListShipments(c echo.Context) error {
	uid := middleware.UIDFromContext(c)

	shipments, err := h.uc.GetUserShipments(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipments, "")
}

// Track handles the public tracking lookup. A miss is a 404 with a stable
// error code, never a 500.
func (h *ShipmentHandler) Track(c echo.Context) error {
	trackingNumber := c.Param("trackingNumber")

	result, err := h.uc.TrackShipment(c.Request().Context(), trackingNumber)
	if err != nil {
		return errors.WithStack(err)
	}
	if result == nil {
		return response.NotFound(c, "SHIPMENT_NOT_FOUND", "No shipment matches this tracking number")
	}

	return response.Success(c, http.StatusOK, result, "")
}

// UpdateStatus handles a lifecycle transition request from staff.
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("shipment id must be a UUID")
	}

	var input usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status update input")
	}
	input.ShipmentID = shipmentID
	input.ActorUID = middleware.UIDFromContext(c)

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateShipmentStatus(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shipment status updated")
}
