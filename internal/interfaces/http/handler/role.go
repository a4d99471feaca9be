package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/identity"
)

// RoleHandler handles role administration API endpoints
type RoleHandler struct {
	BaseHandler
	roleService *identityapp.RoleService
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roleService *identityapp.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// RegisterRoutes registers role routes on the given group
func (h *RoleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	roles := rg.Group("/roles")
	{
		roles.POST("", h.Create)
		roles.GET("", h.List)
		roles.GET("/:id", h.GetByID)
		roles.PUT("/:id", h.Update)
		roles.POST("/:id/enable", h.Enable)
		roles.POST("/:id/disable", h.Disable)
		roles.DELETE("/:id", h.Delete)
	}
}

func (h *RoleHandler) roleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid role ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create creates a new role
func (h *RoleHandler) Create(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.roleService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List lists all roles
func (h *RoleHandler) List(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	results, err := h.roleService.List(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// GetByID retrieves a role by ID
func (h *RoleHandler) GetByID(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roleID(c)
	if !ok {
		return
	}

	result, err := h.roleService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update updates a role's name, description, or permission grants
func (h *RoleHandler) Update(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roleID(c)
	if !ok {
		return
	}

	var req identityapp.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.roleService.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Enable re-enables a disabled role
func (h *RoleHandler) Enable(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roleID(c)
	if !ok {
		return
	}

	if err := h.roleService.Enable(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Role enabled"})
}

// Disable disables a role; its members keep their accounts but lose
// the role's grants until it is enabled again
func (h *RoleHandler) Disable(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roleID(c)
	if !ok {
		return
	}

	if err := h.roleService.Disable(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Role disabled"})
}

// Delete removes a role that is no longer assigned to anyone
func (h *RoleHandler) Delete(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roleID(c)
	if !ok {
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
