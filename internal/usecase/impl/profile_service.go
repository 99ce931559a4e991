package impl

import (
	"context"
	"log/slog"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/domain/service"
	"cargofly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// EnsureProfile returns the profile for the verified identity, creating it
// lazily on first sign-in with a zero wallet balance. The role claim from the
// token is only honored at creation time; an existing profile keeps its
// stored role.
func (srv *profileService) EnsureProfile(ctx context.Context, claims *service.AuthClaims) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByUID(ctx, claims.UID)
		if err == nil {
			user = found

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user")
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			role = entity.RoleCustomer
		}

		user = &entity.User{
			UID:           claims.UID,
			Email:         claims.Email,
			DisplayName:   claims.Name,
			Role:          role,
			WalletBalance: decimal.Zero,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		srv.logger.Info("Profile created on first sign-in", "uid", claims.UID, "role", role)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure profile")
	}

	return user, nil
}

// GetProfile retrieves an existing profile by auth UID.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no profile for user")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile modifies the mutable profile fields. Role and wallet balance
// are deliberately not touchable through this path.
func (srv *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no profile for user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found.DisplayName = input.DisplayName
		found.Phone = input.Phone
		found.Company = input.Company

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.logger.Info("Profile updated", "uid", uid)

	return user, nil
}
