package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/auth"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	roleRepo   identity.RoleRepository
	jwtService *auth.JWTService
	config     AuthServiceConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	jwtService *auth.JWTService,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
		config:     config,
		logger:     logger,
	}
}

// Login authenticates a staff member and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	s.logger.Info("Login attempt", zap.String("username", req.Username))

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("username", req.Username))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later or contact a manager")
		}
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", req.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(req.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("username", req.Username),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("username", req.Username),
			zap.Int("failed_attempts", user.FailedAttempts))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	role, permissions, err := s.resolveRole(ctx, user.RoleID)
	if err != nil {
		s.logger.Error("Failed to resolve user role", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user permissions")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      user.ID,
		Username:    user.Username,
		RoleCode:    role.Code,
		Permissions: permissions,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLoginSuccess(req.IP)
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("username", req.Username),
		zap.String("user_id", user.ID.String()),
		zap.String("role", role.Code))

	userInfo := ToUserResponse(user)
	userInfo.RoleCode = role.Code
	userInfo.Permissions = permissions

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  userInfo,
	}, nil
}

// RefreshToken refreshes the access token using a valid refresh token.
// Role and permissions are re-resolved so revoked grants do not survive.
func (s *AuthService) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*RefreshTokenResponse, error) {
	refreshClaims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	userID, err := uuid.Parse(refreshClaims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if !user.CanLogin() {
		s.logger.Warn("Token refresh for inactive user", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	role, permissions, err := s.resolveRole(ctx, user.RoleID)
	if err != nil {
		s.logger.Error("Failed to resolve role during refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user permissions")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, role.Code, permissions)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	return &RefreshTokenResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// GetCurrentUser retrieves the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	role, permissions, err := s.resolveRole(ctx, user.RoleID)
	if err != nil {
		s.logger.Error("Failed to resolve user role", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user permissions")
	}

	response := ToUserResponse(user)
	response.RoleCode = role.Code
	response.Permissions = permissions
	return &response, nil
}

// ChangePassword changes the authenticated user's password
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", userID.String()))
	return nil
}

// resolveRole loads a user's role and returns its effective permissions.
// A disabled role grants nothing.
func (s *AuthService) resolveRole(ctx context.Context, roleID uuid.UUID) (*identity.Role, []string, error) {
	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, nil, err
	}
	if !role.IsEnabled {
		return role, []string{}, nil
	}
	return role, role.Permissions, nil
}

func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrInvalidToken:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
