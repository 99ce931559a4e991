// Package validator plugs go-playground struct validation into Echo.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator.Validate instance for Echo's Validator hook.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a CustomValidator with the default tag-based rules.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks the struct tags on a bound request payload.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
