package usecase

import (
	"context"

	"cargofly/internal/domain/entity"
	"cargofly/internal/domain/service"
)

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	DisplayName string `json:"displayName" validate:"required"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
}

// ProfileUsecase defines the user profile use cases.
type ProfileUsecase interface {
	// EnsureProfile returns the profile for the authenticated identity,
	// creating it with a zero wallet balance on first sign-in.
	EnsureProfile(ctx context.Context, claims *service.AuthClaims) (*entity.User, error)

	// GetProfile retrieves an existing profile by auth UID.
	GetProfile(ctx context.Context, uid string) (*entity.User, error)

	// UpdateProfile modifies the mutable profile fields.
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*entity.User, error)
}
