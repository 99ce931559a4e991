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
	"github.com/shopspring/decimal"
)

// FundWalletRequest is the body for a wallet top-up.
type FundWalletRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Reference string          `json:"reference"`
}

// PayRequest is the body for a wallet payment. Either ShipmentID (pay a
// booking) or Amount (arbitrary charge) must be set.
type PayRequest struct {
	ShipmentID string          `json:"shipmentId"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
}

// WalletHandler holds dependencies for wallet-related handlers.
type WalletHandler struct {
	uc     usecase.WalletUsecase
	logger *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWallet returns the authenticated user's balance and ledger.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	uid := middleware.UIDFromContext(c)

	view, err := h.uc.GetWallet(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Fund credits the authenticated user's wallet.
func (h *WalletHandler) Fund(c echo.Context) error {
	var req FundWalletRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid funding input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	uid := middleware.UIDFromContext(c)
	if err := h.uc.FundWallet(c.Request().Context(), uid, req.Amount, req.Reference); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wallet funded successfully")
}

// Pay debits the authenticated user's wallet, either for a shipment booking
// or an arbitrary referenced charge.
func (h *WalletHandler) Pay(c echo.Context) error {
	var req PayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	uid := middleware.UIDFromContext(c)
	ctx := c.Request().Context()

	if req.ShipmentID != "" {
		shipmentID, err := uuid.Parse(req.ShipmentID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("shipmentId must be a UUID")
		}

		if err := h.uc.PayForShipment(ctx, uid, shipmentID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Shipment paid successfully")
	}

	if err := h.uc.PayWithWallet(ctx, uid, req.Amount, req.Reference); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment successful")
}
