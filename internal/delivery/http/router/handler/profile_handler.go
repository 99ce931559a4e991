package handler

import (
	"log/slog"
	"net/http"

	"cargofly/internal/delivery/http/middleware"
	"cargofly/internal/delivery/http/response"
	"cargofly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated user's profile, creating it lazily on
// first sign-in.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	user, err := h.uc.EnsureProfile(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile modifies the mutable profile fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	uid := middleware.UIDFromContext(c)
	user, err := h.uc.UpdateProfile(c.Request().Context(), uid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}
