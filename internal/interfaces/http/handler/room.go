package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hotelapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/hotel"
)

// RoomHandler handles room administration API endpoints
type RoomHandler struct {
	BaseHandler
	roomService *hotelapp.RoomService
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(roomService *hotelapp.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RegisterRoutes registers room routes on the given group
func (h *RoomHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.Create)
		rooms.GET("", h.List)
		rooms.GET("/available", h.FindAvailable)
		rooms.GET("/:id", h.GetByID)
		rooms.PUT("/:id", h.Update)
		rooms.PUT("/:id/status", h.SetStatus)
		rooms.DELETE("/:id", h.Delete)
	}
}

func (h *RoomHandler) roomID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create registers a new room
func (h *RoomHandler) Create(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req hotelapp.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.roomService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List lists rooms with filtering and pagination
func (h *RoomHandler) List(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter hotelapp.RoomListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	results, total, err := h.roomService.List(c.Request.Context(), principal, filter)
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

// FindAvailable lists rooms free for a date range
func (h *RoomHandler) FindAvailable(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req hotelapp.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	results, err := h.roomService.FindAvailable(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// GetByID retrieves a room by ID
func (h *RoomHandler) GetByID(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roomID(c)
	if !ok {
		return
	}

	result, err := h.roomService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update updates a room's details or rate
func (h *RoomHandler) Update(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roomID(c)
	if !ok {
		return
	}

	var req hotelapp.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.roomService.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// SetStatus changes a room's operational status
func (h *RoomHandler) SetStatus(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roomID(c)
	if !ok {
		return
	}

	var req hotelapp.SetRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.roomService.SetStatus(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a room that has no booking history
func (h *RoomHandler) Delete(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.roomID(c)
	if !ok {
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
