// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cargofly/internal/domain/entity"
	"cargofly/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUID retrieves a single user profile by the auth provider UID.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// Create persists a new user profile. Called lazily on first sign-in.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies mutable profile fields (display name, phone, company).
	Update(ctx context.Context, user *entity.User) error
}
