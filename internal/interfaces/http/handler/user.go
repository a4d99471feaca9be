package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/identity"
)

// UserHandler handles staff account administration API endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user routes on the given group
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.PUT("/:id/role", h.AssignRole)
		users.POST("/:id/activate", h.Activate)
		users.POST("/:id/deactivate", h.Deactivate)
		users.POST("/:id/reset-password", h.ResetPassword)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create registers a new staff account
func (h *UserHandler) Create(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.userService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List lists staff accounts
func (h *UserHandler) List(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter identityapp.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	results, total, err := h.userService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, results, total, page, pageSize)
}

// GetByID retrieves a staff account by ID
func (h *UserHandler) GetByID(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	result, err := h.userService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update updates a staff account's profile fields
func (h *UserHandler) Update(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req identityapp.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.userService.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AssignRole moves a staff account to a different role
func (h *UserHandler) AssignRole(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req identityapp.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.userService.AssignRole(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Activate re-activates a deactivated staff account
func (h *UserHandler) Activate(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.userService.Activate(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User activated"})
}

// Deactivate deactivates a staff account
func (h *UserHandler) Deactivate(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User deactivated"})
}

// ResetPassword sets a new password for a staff account
func (h *UserHandler) ResetPassword(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req identityapp.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), principal, id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password reset"})
}

// Delete removes a staff account
func (h *UserHandler) Delete(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
