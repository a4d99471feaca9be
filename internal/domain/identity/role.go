package identity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// Predefined role codes. MASTER_ADMIN is the single super-role that
// bypasses all permission checks.
const (
	RoleCodeMasterAdmin  = "MASTER_ADMIN"
	RoleCodeManager      = "MANAGER"
	RoleCodeFrontDesk    = "FRONT_DESK"
	RoleCodeAccountant   = "ACCOUNTANT"
	RoleCodeHousekeeping = "HOUSEKEEPING"
)

// PermissionList is a set of canonical permission codes stored as JSONB
type PermissionList []string

// Value implements driver.Valuer for GORM to store as JSONB
func (l PermissionList) Value() (driver.Value, error) {
	if l == nil {
		l = PermissionList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (l *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*l = PermissionList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan PermissionList: unsupported type")
	}

	if len(bytes) == 0 {
		*l = PermissionList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Role is the aggregate root for RBAC roles. Permissions are stored
// canonically; legacy aliases are translated on the way in.
type Role struct {
	shared.BaseAggregateRoot
	Code         string `gorm:"uniqueIndex;size:50;not null"`
	Name         string `gorm:"size:100;not null"`
	Description  string `gorm:"size:500"`
	IsSystemRole bool   `gorm:"not null;default:false"` // system roles cannot be deleted
	IsEnabled    bool   `gorm:"not null;default:true"`
	Permissions  PermissionList `gorm:"type:jsonb"`
}

var roleCodeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// NewRole creates a new role with required fields
func NewRole(code, name string) (*Role, error) {
	if err := validateRoleCode(code); err != nil {
		return nil, err
	}
	if err := validateRoleName(name); err != nil {
		return nil, err
	}

	role := &Role{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(strings.TrimSpace(code)),
		Name:              strings.TrimSpace(name),
		IsEnabled:         true,
		Permissions:       PermissionList{},
	}

	role.AddDomainEvent(NewRoleCreatedEvent(role))

	return role, nil
}

// NewSystemRole creates a new system role (cannot be deleted)
func NewSystemRole(code, name string) (*Role, error) {
	role, err := NewRole(code, name)
	if err != nil {
		return nil, err
	}
	role.IsSystemRole = true
	return role, nil
}

// SetName sets the role name
func (r *Role) SetName(name string) error {
	if err := validateRoleName(name); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(name)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// SetDescription sets the role description
func (r *Role) SetDescription(description string) {
	r.Description = description
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// Enable enables the role
func (r *Role) Enable() error {
	if r.IsEnabled {
		return shared.NewDomainError("ALREADY_ENABLED", "Role is already enabled")
	}
	r.IsEnabled = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Disable disables the role
func (r *Role) Disable() error {
	if !r.IsEnabled {
		return shared.NewDomainError("ALREADY_DISABLED", "Role is already disabled")
	}
	r.IsEnabled = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// GrantPermission grants a permission to the role. Legacy aliases are
// translated to their canonical code before being stored.
func (r *Role) GrantPermission(code string) error {
	canonical := NormalizePermission(code)
	if _, err := NewPermission(canonical); err != nil {
		return err
	}

	for _, p := range r.Permissions {
		if p == canonical {
			return shared.NewDomainError("PERMISSION_ALREADY_GRANTED", "Role already has this permission")
		}
	}

	r.Permissions = append(r.Permissions, canonical)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// RevokePermission revokes a permission from the role
func (r *Role) RevokePermission(code string) error {
	canonical := NormalizePermission(code)

	found := false
	remaining := make(PermissionList, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		if p != canonical {
			remaining = append(remaining, p)
		} else {
			found = true
		}
	}
	if !found {
		return shared.NewDomainError("PERMISSION_NOT_FOUND", "Role does not have this permission")
	}

	r.Permissions = remaining
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// SetPermissions replaces the role's permission set
func (r *Role) SetPermissions(codes []string) error {
	seen := make(map[string]bool, len(codes))
	unique := make(PermissionList, 0, len(codes))
	for _, code := range codes {
		canonical := NormalizePermission(code)
		if _, err := NewPermission(canonical); err != nil {
			return err
		}
		if !seen[canonical] {
			seen[canonical] = true
			unique = append(unique, canonical)
		}
	}

	r.Permissions = unique
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// HasPermission checks if the role carries a permission
func (r *Role) HasPermission(code string) bool {
	canonical := NormalizePermission(code)
	for _, p := range r.Permissions {
		if p == canonical {
			return true
		}
	}
	return false
}

// CanDelete returns true if the role can be deleted
func (r *Role) CanDelete() bool {
	return !r.IsSystemRole
}

// Update updates the role's basic information
func (r *Role) Update(name, description string) error {
	if err := r.SetName(name); err != nil {
		return err
	}
	r.SetDescription(description)
	return nil
}

// Validation functions

func validateRoleCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_ROLE_CODE", "Role code cannot be empty")
	}
	if len(code) < 2 {
		return shared.NewDomainError("INVALID_ROLE_CODE", "Role code must be at least 2 characters")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_ROLE_CODE", "Role code cannot exceed 50 characters")
	}
	if !roleCodeRegex.MatchString(code) {
		return shared.NewDomainError("INVALID_ROLE_CODE",
			"Role code must start with a letter and contain only letters, numbers, and underscores")
	}
	return nil
}

func validateRoleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot exceed 100 characters")
	}
	return nil
}
