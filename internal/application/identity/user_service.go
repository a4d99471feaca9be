package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// UserService handles staff account administration
type UserService struct {
	userRepo identity.UserRepository
	roleRepo identity.RoleRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, roleRepo identity.RoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// Create creates a new staff account
func (s *UserService) Create(ctx context.Context, principal identity.Principal, req CreateUserRequest) (*UserResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Username is already taken")
	}

	role, err := s.roleRepo.FindByID(ctx, req.RoleID)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Role not found")
	}

	user, err := identity.NewUser(req.Username, req.Password, role.ID)
	if err != nil {
		return nil, err
	}
	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		if err := user.SetPhone(req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponseWithRole(user, role)
	return &response, nil
}

// GetByID retrieves a staff account
func (s *UserService) GetByID(ctx context.Context, principal identity.Principal, userID uuid.UUID) (*UserResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		role = nil
	}
	response := ToUserResponseWithRole(user, role)
	return &response, nil
}

// List lists staff accounts
func (s *UserService) List(ctx context.Context, principal identity.Principal, filter UserListFilter) ([]UserResponse, int64, error) {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return nil, 0, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, total, nil
}

// Update updates a staff account's profile fields
func (s *UserService) Update(ctx context.Context, principal identity.Principal, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if err := user.SetDisplayName(*req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil {
		if err := user.SetPhone(*req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// AssignRole assigns a different role to a user
func (s *UserService) AssignRole(ctx context.Context, principal identity.Principal, userID uuid.UUID, req AssignRoleRequest) (*UserResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, req.RoleID)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Role not found")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.AssignRole(role.ID); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponseWithRole(user, role)
	return &response, nil
}

// Activate re-activates a locked or deactivated account
func (s *UserService) Activate(ctx context.Context, principal identity.Principal, userID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.Activate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Deactivate disables an account. A user cannot deactivate themselves.
func (s *UserService) Deactivate(ctx context.Context, principal identity.Principal, userID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return err
	}
	if principal.UserID == userID {
		return shared.NewDomainError(shared.CodeValidationError, "Cannot deactivate your own account")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.Deactivate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// ResetPassword administratively sets a new password for a user
func (s *UserService) ResetPassword(ctx context.Context, principal identity.Principal, userID uuid.UUID, req ResetPasswordRequest) error {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Delete removes a staff account
func (s *UserService) Delete(ctx context.Context, principal identity.Principal, userID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageUsers); err != nil {
		return err
	}
	if principal.UserID == userID {
		return shared.NewDomainError(shared.CodeValidationError, "Cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, userID)
}
