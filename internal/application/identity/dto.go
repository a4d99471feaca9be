package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
)

// ==================== Auth ====================

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=1,max=128"`
	IP       string `json:"-"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	User                  UserResponse `json:"user"`
}

// RefreshTokenRequest represents a token refresh attempt
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse is returned on successful token refresh
type RefreshTokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// ChangePasswordRequest represents a password change by the user themselves
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// ==================== Users ====================

// CreateUserRequest represents a request to create a staff account
type CreateUserRequest struct {
	Username    string    `json:"username" binding:"required,min=3,max=50"`
	Password    string    `json:"password" binding:"required,min=8,max=128"`
	DisplayName string    `json:"display_name" binding:"max=100"`
	Email       string    `json:"email" binding:"omitempty,email"`
	Phone       string    `json:"phone" binding:"max=20"`
	RoleID      uuid.UUID `json:"role_id" binding:"required"`
}

// UpdateUserRequest represents a request to update a staff account
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

// AssignRoleRequest assigns a different role to a user
type AssignRoleRequest struct {
	RoleID uuid.UUID `json:"role_id" binding:"required"`
}

// ResetPasswordRequest is an administrative password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// UserListFilter represents filtering options for listing users
type UserListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// UserResponse represents a staff account in API responses
type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Username    string              `json:"username"`
	DisplayName string              `json:"display_name"`
	Email       string              `json:"email,omitempty"`
	Phone       string              `json:"phone,omitempty"`
	Status      identity.UserStatus `json:"status"`
	RoleID      uuid.UUID           `json:"role_id"`
	RoleCode    string              `json:"role_code,omitempty"`
	Permissions []string            `json:"permissions,omitempty"`
	LastLoginAt *time.Time          `json:"last_login_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ==================== Roles ====================

// CreateRoleRequest represents a request to create a role
type CreateRoleRequest struct {
	Code        string   `json:"code" binding:"required,min=2,max=50"`
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest represents a request to update a role
type UpdateRoleRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Permissions []string `json:"permissions"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsSystemRole bool      `json:"is_system_role"`
	IsEnabled    bool      `json:"is_enabled"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ==================== Converters ====================

// ToUserResponse converts a domain user to a response
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.GetDisplayNameOrUsername(),
		Email:       u.Email,
		Phone:       u.Phone,
		Status:      u.Status,
		RoleID:      u.RoleID,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserResponseWithRole converts a user together with their resolved role
func ToUserResponseWithRole(u *identity.User, role *identity.Role) UserResponse {
	resp := ToUserResponse(u)
	if role != nil {
		resp.RoleCode = role.Code
		resp.Permissions = role.Permissions
	}
	return resp
}

// ToRoleResponse converts a domain role to a response
func ToRoleResponse(r *identity.Role) RoleResponse {
	return RoleResponse{
		ID:           r.ID,
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		IsSystemRole: r.IsSystemRole,
		IsEnabled:    r.IsEnabled,
		Permissions:  r.Permissions,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
