// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByUID retrieves a single user profile by the auth provider UID.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by uid")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("account already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies mutable profile fields. The wallet balance deliberately
// stays out of this path; it only changes through WalletRepository.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ?", user.UID).
		Updates(map[string]any{
			"display_name": user.DisplayName,
			"phone":        user.Phone,
			"company":      user.Company,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		UID:           data.UID,
		Email:         data.Email,
		DisplayName:   data.DisplayName,
		Phone:         data.Phone,
		Company:       data.Company,
		Role:          entity.Role(data.Role),
		WalletBalance: data.WalletBalance,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		UID:           data.UID,
		Email:         data.Email,
		DisplayName:   data.DisplayName,
		Phone:         data.Phone,
		Company:       data.Company,
		Role:          data.Role.String(),
		WalletBalance: data.WalletBalance,
	}
}
