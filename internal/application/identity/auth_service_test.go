package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/auth"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, roleID uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockRoleRepository is a mock implementation of RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByCode(ctx context.Context, code string) (*identity.Role, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Role, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Role), args.Error(1)
}

func (m *MockRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// Test helpers

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
}

func newTestAuthService(userRepo *MockUserRepository, roleRepo *MockRoleRepository) *AuthService {
	return NewAuthService(userRepo, roleRepo, newTestJWTService(), DefaultAuthServiceConfig(), zap.NewNop())
}

func createTestRole(t *testing.T) *identity.Role {
	t.Helper()
	role, err := identity.NewRole("FRONT_DESK", "Front Desk")
	require.NoError(t, err)
	err = role.SetPermissions([]string{"view_bookings", "check_in_guests"})
	require.NoError(t, err)
	return role
}

func createTestUser(t *testing.T, roleID uuid.UUID) *identity.User {
	t.Helper()
	user, err := identity.NewUser("reception1", "correct-password", roleID)
	require.NoError(t, err)
	return user
}

func assertAuthErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, code, de.Code)
}

// Tests

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := newTestAuthService(userRepo, roleRepo)

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByUsername", ctx, "reception1").Return(user, nil)
	roleRepo.On("FindByID", ctx, role.ID).Return(role, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	result, err := service.Login(ctx, LoginRequest{Username: "reception1", Password: "correct-password", IP: "10.0.0.5"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "reception1", result.User.Username)
	assert.Equal(t, "FRONT_DESK", result.User.RoleCode)
	assert.Contains(t, result.User.Permissions, "check_in_guests")
	assert.NotNil(t, user.LastLoginAt)
	assert.Equal(t, "10.0.0.5", user.LastLoginIP)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo, new(MockRoleRepository))

	ctx := context.Background()
	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

	_, err := service.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever"})

	assertAuthErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := newTestAuthService(userRepo, roleRepo)

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByUsername", ctx, "reception1").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	_, err := service.Login(ctx, LoginRequest{Username: "reception1", Password: "wrong"})

	assertAuthErrorCode(t, err, "INVALID_CREDENTIALS")
	assert.Equal(t, 1, user.FailedAttempts)
}

func TestAuthService_Login_LocksAfterMaxAttempts(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := newTestAuthService(userRepo, roleRepo)

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByUsername", ctx, "reception1").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	var err error
	for i := 0; i < 4; i++ {
		_, err = service.Login(ctx, LoginRequest{Username: "reception1", Password: "wrong"})
		assertAuthErrorCode(t, err, "INVALID_CREDENTIALS")
	}

	_, err = service.Login(ctx, LoginRequest{Username: "reception1", Password: "wrong"})
	assertAuthErrorCode(t, err, "ACCOUNT_LOCKED")
	assert.True(t, user.IsLocked())

	// Even the correct password is rejected while locked
	_, err = service.Login(ctx, LoginRequest{Username: "reception1", Password: "correct-password"})
	assertAuthErrorCode(t, err, "ACCOUNT_LOCKED")
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo, new(MockRoleRepository))

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)
	require.NoError(t, user.Deactivate())

	userRepo.On("FindByUsername", ctx, "reception1").Return(user, nil)

	_, err := service.Login(ctx, LoginRequest{Username: "reception1", Password: "correct-password"})

	assertAuthErrorCode(t, err, "ACCOUNT_DEACTIVATED")
}

func TestAuthService_Login_DisabledRoleGrantsNothing(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := newTestAuthService(userRepo, roleRepo)

	ctx := context.Background()
	role := createTestRole(t)
	require.NoError(t, role.Disable())
	user := createTestUser(t, role.ID)

	userRepo.On("FindByUsername", ctx, "reception1").Return(user, nil)
	roleRepo.On("FindByID", ctx, role.ID).Return(role, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	result, err := service.Login(ctx, LoginRequest{Username: "reception1", Password: "correct-password"})

	require.NoError(t, err)
	assert.Empty(t, result.User.Permissions)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := newTestAuthService(userRepo, roleRepo)

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByUsername", ctx, "reception1").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	roleRepo.On("FindByID", ctx, role.ID).Return(role, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	login, err := service.Login(ctx, LoginRequest{Username: "reception1", Password: "correct-password"})
	require.NoError(t, err)

	result, err := service.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEqual(t, login.RefreshToken, result.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	service := newTestAuthService(new(MockUserRepository), new(MockRoleRepository))

	_, err := service.RefreshToken(context.Background(), RefreshTokenRequest{RefreshToken: "garbage"})

	assertAuthErrorCode(t, err, "TOKEN_INVALID")
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo, new(MockRoleRepository))

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
		OldPassword: "correct-password",
		NewPassword: "a-new-longer-password",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("a-new-longer-password"))
	assert.False(t, user.VerifyPassword("correct-password"))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo, new(MockRoleRepository))

	ctx := context.Background()
	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "a-new-longer-password",
	})

	assert.Error(t, err)
	assert.True(t, user.VerifyPassword("correct-password"))
}
