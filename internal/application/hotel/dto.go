package hotel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
)

// CreateRoomRequest represents a request to register a room
type CreateRoomRequest struct {
	Number      string          `json:"number" binding:"required,min=1,max=20"`
	Type        hotel.RoomType  `json:"type" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required,min=1"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	Floor       int             `json:"floor"`
	Description string          `json:"description" binding:"max=500"`
}

// UpdateRoomRequest represents a request to update a room's details
type UpdateRoomRequest struct {
	Type        *hotel.RoomType  `json:"type"`
	Capacity    *int             `json:"capacity"`
	Rate        *decimal.Decimal `json:"rate"`
	Floor       *int             `json:"floor"`
	Description *string          `json:"description"`
}

// SetRoomStatusRequest changes a room's operational status
type SetRoomStatusRequest struct {
	Status hotel.RoomStatus `json:"status" binding:"required"`
}

// RoomListFilter represents filtering options for listing rooms
type RoomListFilter struct {
	Page     int               `form:"page"`
	PageSize int               `form:"page_size"`
	Search   string            `form:"search"`
	Type     *hotel.RoomType   `form:"type"`
	Status   *hotel.RoomStatus `form:"status"`
}

// AvailabilityRequest asks which rooms are free for a date range
type AvailabilityRequest struct {
	CheckInDate  time.Time `form:"check_in_date" binding:"required" time_format:"2006-01-02"`
	CheckOutDate time.Time `form:"check_out_date" binding:"required" time_format:"2006-01-02"`
}

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID          uuid.UUID        `json:"id"`
	Number      string           `json:"number"`
	Type        hotel.RoomType   `json:"type"`
	Capacity    int              `json:"capacity"`
	Rate        decimal.Decimal  `json:"rate"`
	Status      hotel.RoomStatus `json:"status"`
	Floor       int              `json:"floor"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToRoomResponse converts a domain room to a response
func ToRoomResponse(r *hotel.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Type:        r.Type,
		Capacity:    r.Capacity,
		Rate:        r.Rate,
		Status:      r.Status,
		Floor:       r.Floor,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
