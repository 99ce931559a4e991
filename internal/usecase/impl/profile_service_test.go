package impl

import (
	"context"
	"testing"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/domain/service"
	mockRepo "cargofly/internal/mocks/repository"
	"cargofly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	t         *testing.T
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProfileService(txManager, newTestLogger())

	return profileServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (f profileServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestProfileService_EnsureProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	claims := &service.AuthClaims{UID: "user-1", Email: "new@example.com", Role: "admin"}
	existing := &entity.User{
		UID:         "user-1",
		Email:       "stored@example.com",
		DisplayName: "Stored Name",
		Role:        entity.RoleCustomer,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		// No Create: the stored profile (and its role) wins over the claims.
		userRepo.EXPECT().FindByUID(ctx, "user-1").Return(existing, nil)
	})

	user, err := fx.service.EnsureProfile(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, existing, user)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestProfileService_EnsureProfile_FirstSignIn(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	claims := &service.AuthClaims{UID: "user-1", Email: "ada@example.com", Name: "Ada Obi"}

	var created *entity.User

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByUID(ctx, "user-1").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(ctx context.Context, user *entity.User) error {
				created = user

				return nil
			})
	})

	user, err := fx.service.EnsureProfile(ctx, claims)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, user)
	assert.Equal(t, "user-1", created.UID)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "Ada Obi", created.DisplayName)
	assert.Equal(t, entity.RoleCustomer, created.Role)
	assert.True(t, decimal.Zero.Equal(created.WalletBalance))
}

func TestProfileService_EnsureProfile_RoleClaim(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	claims := &service.AuthClaims{UID: "ops-1", Email: "ops@example.com", Role: "staff"}

	var created *entity.User

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByUID(ctx, "ops-1").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(ctx context.Context, user *entity.User) error {
				created = user

				return nil
			})
	})

	_, err := fx.service.EnsureProfile(ctx, claims)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleStaff, created.Role)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByUID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetProfile(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	existing := &entity.User{
		UID:         "user-1",
		DisplayName: "Old Name",
		Role:        entity.RoleStaff,
	}
	input := &usecase.UpdateProfileInput{
		DisplayName: "New Name",
		Phone:       "+2348000000000",
		Company:     "Acme Cargo",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByUID(ctx, "user-1").Return(existing, nil)
		userRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, "user-1", input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.DisplayName)
	assert.Equal(t, "+2348000000000", user.Phone)
	assert.Equal(t, "Acme Cargo", user.Company)
	// Role is not touchable through profile updates.
	assert.Equal(t, entity.RoleStaff, user.Role)
}
