package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// RoleService handles role administration
type RoleService struct {
	roleRepo identity.RoleRepository
	userRepo identity.UserRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo identity.RoleRepository, userRepo identity.UserRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
	}
}

// Create creates a new role
func (s *RoleService) Create(ctx context.Context, principal identity.Principal, req CreateRoleRequest) (*RoleResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return nil, err
	}

	exists, err := s.roleRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Role code is already taken")
	}

	role, err := identity.NewRole(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		role.SetDescription(req.Description)
	}
	if len(req.Permissions) > 0 {
		if err := role.SetPermissions(req.Permissions); err != nil {
			return nil, err
		}
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// GetByID retrieves a role
func (s *RoleService) GetByID(ctx context.Context, principal identity.Principal, roleID uuid.UUID) (*RoleResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	response := ToRoleResponse(role)
	return &response, nil
}

// List lists all roles
func (s *RoleService) List(ctx context.Context, principal identity.Principal) ([]RoleResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = ToRoleResponse(&roles[i])
	}
	return responses, nil
}

// Update updates a role's name, description, and permission grants
func (s *RoleService) Update(ctx context.Context, principal identity.Principal, roleID uuid.UUID, req UpdateRoleRequest) (*RoleResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := role.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		role.SetDescription(*req.Description)
	}
	if req.Permissions != nil {
		if err := role.SetPermissions(req.Permissions); err != nil {
			return nil, err
		}
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// Enable enables a role
func (s *RoleService) Enable(ctx context.Context, principal identity.Principal, roleID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return err
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if err := role.Enable(); err != nil {
		return err
	}
	return s.roleRepo.Save(ctx, role)
}

// Disable disables a role. Users holding it lose its grants on their
// next token refresh.
func (s *RoleService) Disable(ctx context.Context, principal identity.Principal, roleID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return err
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsSystemRole {
		return shared.NewDomainError(shared.CodeValidationError, "System roles cannot be disabled")
	}
	if err := role.Disable(); err != nil {
		return err
	}
	return s.roleRepo.Save(ctx, role)
}

// Delete removes a role that is not a system role and has no users
func (s *RoleService) Delete(ctx context.Context, principal identity.Principal, roleID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageRoles); err != nil {
		return err
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if !role.CanDelete() {
		return shared.NewDomainError(shared.CodeValidationError, "System roles cannot be deleted")
	}

	users, err := s.userRepo.FindByRole(ctx, roleID)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return shared.NewDomainError(shared.CodeValidationError, "Role is still assigned to users")
	}

	return s.roleRepo.Delete(ctx, roleID)
}
