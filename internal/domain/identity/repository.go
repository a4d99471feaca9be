package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindAll finds users with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// FindByRole finds users assigned to a role
	FindByRole(ctx context.Context, roleID uuid.UUID) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByUsername checks if a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// RoleRepository defines the interface for role persistence
type RoleRepository interface {
	// FindByID finds a role by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Role, error)

	// FindByCode finds a role by its code
	FindByCode(ctx context.Context, code string) (*Role, error)

	// FindAll finds all roles
	FindAll(ctx context.Context, filter shared.Filter) ([]Role, error)

	// Save creates or updates a role
	Save(ctx context.Context, role *Role) error

	// Delete deletes a role (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByCode checks if a role code is taken
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
