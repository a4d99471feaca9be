package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/auth"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/logger"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	BaseHandler
	authService    *identityapp.AuthService
	tokenBlacklist auth.TokenBlacklist
}

// NewAuthHandler creates a new AuthHandler. tokenBlacklist may be nil,
// in which case logout only succeeds client-side.
func NewAuthHandler(authService *identityapp.AuthService, tokenBlacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		tokenBlacklist: tokenBlacklist,
	}
}

// RegisterRoutes registers auth routes on the given group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
		authGroup.POST("/change-password", h.ChangePassword)
	}
}

// Login authenticates a staff member and issues a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.IP = c.ClientIP()

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a refresh token for a fresh token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identityapp.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout revokes the presented access token for its remaining lifetime
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if h.tokenBlacklist != nil && claims.ID != "" {
		if err := h.tokenBlacklist.AddToBlacklist(c.Request.Context(), claims.ID, claims.GetRemainingTTL()); err != nil {
			logger.GetGinLogger(c).Error("Failed to blacklist token on logout",
				zap.String("jti", claims.ID),
				zap.Error(err))
			h.InternalError(c, "Failed to log out")
			return
		}
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// Me returns the authenticated staff member's profile
func (h *AuthHandler) Me(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.authService.GetCurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ChangePassword changes the authenticated staff member's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), principal.UserID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed"})
}
