package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

func newAdminPrincipal() identity.Principal {
	return identity.NewPrincipal(uuid.New(), "admin", identity.RoleCodeManager,
		[]string{identity.PermManageUsers})
}

func newFrontDeskPrincipal() identity.Principal {
	return identity.NewPrincipal(uuid.New(), "reception", identity.RoleCodeFrontDesk,
		[]string{identity.PermViewBookings})
}

func TestUserService_Create_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	role := createTestRole(t)
	userRepo.On("ExistsByUsername", mock.Anything, "nadia.rahman").Return(false, nil)
	roleRepo.On("FindByID", mock.Anything, role.ID).Return(role, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := service.Create(context.Background(), newAdminPrincipal(), CreateUserRequest{
		Username:    "nadia.rahman",
		Password:    "S3cure!Pass",
		DisplayName: "Nadia Rahman",
		Email:       "nadia@reemresort.example",
		RoleID:      role.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "nadia.rahman", resp.Username)
	assert.Equal(t, "Nadia Rahman", resp.DisplayName)
	userRepo.AssertExpectations(t)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "nadia.rahman").Return(true, nil)

	_, err := service.Create(context.Background(), newAdminPrincipal(), CreateUserRequest{
		Username: "nadia.rahman",
		Password: "S3cure!Pass",
		RoleID:   uuid.New(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeValidationError, domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Create_RequiresManageUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	_, err := service.Create(context.Background(), newFrontDeskPrincipal(), CreateUserRequest{
		Username: "nadia.rahman",
		Password: "S3cure!Pass",
		RoleID:   uuid.New(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodePermissionDenied, domainErr.Code)
	userRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
}

func TestUserService_AssignRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	oldRole := createTestRole(t)
	newRole, err := identity.NewSystemRole(identity.RoleCodeAccountant, "Accountant")
	require.NoError(t, err)
	user := createTestUser(t, oldRole.ID)

	roleRepo.On("FindByID", mock.Anything, newRole.ID).Return(newRole, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	resp, err := service.AssignRole(context.Background(), newAdminPrincipal(), user.ID, AssignRoleRequest{
		RoleID: newRole.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, newRole.ID, user.RoleID)
	assert.NotNil(t, resp)
	userRepo.AssertExpectations(t)
}

func TestUserService_Deactivate_SelfRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	principal := newAdminPrincipal()

	err := service.Deactivate(context.Background(), principal, principal.UserID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeValidationError, domainErr.Code)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_Deactivate_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	err := service.Deactivate(context.Background(), newAdminPrincipal(), user.ID)

	require.NoError(t, err)
	assert.False(t, user.CanLogin())
	userRepo.AssertExpectations(t)
}

func TestUserService_ResetPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	role := createTestRole(t)
	user := createTestUser(t, role.ID)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	err := service.ResetPassword(context.Background(), newAdminPrincipal(), user.ID, ResetPasswordRequest{
		NewPassword: "N3w!Password",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("N3w!Password"))
	assert.False(t, user.VerifyPassword("correct-password"))
	userRepo.AssertExpectations(t)
}

func TestUserService_Delete_SelfRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	service := NewUserService(userRepo, roleRepo)

	principal := newAdminPrincipal()

	err := service.Delete(context.Background(), principal, principal.UserID)

	require.Error(t, err)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
