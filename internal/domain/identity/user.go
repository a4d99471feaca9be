package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// UserStatus represents the status of a staff account
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"      // locked after failed attempts
	UserStatusDeactivated UserStatus = "deactivated" // manually deactivated
)

// Password cost for bcrypt
const bcryptCost = 12

// User is the aggregate root for staff accounts
type User struct {
	shared.BaseAggregateRoot
	Username       string `gorm:"uniqueIndex;size:100;not null"`
	Email          string `gorm:"size:200"`
	Phone          string `gorm:"size:50"`
	PasswordHash   string `gorm:"size:100;not null"`
	DisplayName    string `gorm:"size:200"`
	Status         UserStatus `gorm:"size:20;not null"`
	RoleID         uuid.UUID  `gorm:"type:uuid;not null"`
	LastLoginAt    *time.Time
	LastLoginIP    string `gorm:"size:45"`
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewUser creates an active staff account assigned to a single role
func NewUser(username, password string, roleID uuid.UUID) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if roleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ROLE_ID", "Role ID cannot be empty")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.ToLower(strings.TrimSpace(username)),
		PasswordHash:      passwordHash,
		Status:            UserStatusActive,
		RoleID:            roleID,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// SetEmail sets the user's email
func (u *User) SetEmail(email string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}
	u.Email = email
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetPhone sets the user's phone number
func (u *User) SetPhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	u.Phone = strings.TrimSpace(phone)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	if displayName != "" && len(displayName) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}
	u.DisplayName = strings.TrimSpace(displayName)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// AssignRole moves the user onto a different role
func (u *User) AssignRole(roleID uuid.UUID) error {
	if roleID == uuid.Nil {
		return shared.NewDomainError("INVALID_ROLE_ID", "Role ID cannot be empty")
	}
	u.RoleID = roleID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// ChangePassword changes the user's password after verifying the old one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Activate reactivates the user and clears any lockout
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}
	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Deactivate deactivates the user
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}
	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess(ip string) {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.FailedAttempts = 0
	u.UpdatedAt = now
	u.IncrementVersion()
}

// RecordLoginFailure records a failed login attempt.
// Returns true if the account was locked as a result.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		u.Status = UserStatusLocked
		if lockDuration > 0 {
			lockedUntil := time.Now().Add(lockDuration)
			u.LockedUntil = &lockedUntil
		}
		return true
	}

	return false
}

// IsLocked returns true if the user is locked and the lock has not expired
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}
	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}
	return true
}

// CanLogin returns true if the user can log in
func (u *User) CanLogin() bool {
	return u.Status != UserStatusDeactivated && !u.IsLocked()
}

// GetDisplayNameOrUsername returns display name if set, otherwise username
func (u *User) GetDisplayNameOrUsername() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Validation functions

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	hasLetter     = regexp.MustCompile(`[a-zA-Z]`)
	hasNumber     = regexp.MustCompile(`[0-9]`)
)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME",
			"Username can only contain letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	if !hasLetter.MatchString(password) || !hasNumber.MatchString(password) {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
