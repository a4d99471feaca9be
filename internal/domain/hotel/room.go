package hotel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

// RoomType classifies a room for pricing and capacity purposes
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeTwin   RoomType = "TWIN"
	RoomTypeDeluxe RoomType = "DELUXE"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeFamily RoomType = "FAMILY"
)

// IsValid checks if the room type is a known type
func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTwin, RoomTypeDeluxe, RoomTypeSuite, RoomTypeFamily:
		return true
	}
	return false
}

// String returns the string representation of RoomType
func (t RoomType) String() string {
	return string(t)
}

// RoomStatus represents the operational state of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
)

// IsValid checks if the status is a valid RoomStatus
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}

// Room is reference data for a bookable room. It is immutable during a
// booking's life except for administrative edits; bookings snapshot the
// rate they were priced at.
type Room struct {
	shared.BaseAggregateRoot
	Number      string          `gorm:"uniqueIndex;size:20;not null"`
	Type        RoomType        `gorm:"size:20;not null"`
	Capacity    int             `gorm:"not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(12,2);not null"` // per-night price
	Status      RoomStatus      `gorm:"size:20;not null"`
	Floor       int
	Description string `gorm:"size:500"`
}

// NewRoom creates a new room
func NewRoom(number string, roomType RoomType, capacity int, rate valueobject.Money) (*Room, error) {
	if number == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room number cannot be empty")
	}
	if len(number) > 20 {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room number cannot exceed 20 characters")
	}
	if !roomType.IsValid() {
		return nil, shared.NewDomainError(shared.CodeValidationError, fmt.Sprintf("Unknown room type %q", roomType))
	}
	if capacity <= 0 {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room capacity must be positive")
	}
	if !rate.IsPositive() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room rate must be positive")
	}

	return &Room{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		Type:              roomType,
		Capacity:          capacity,
		Rate:              rate.Amount(),
		Status:            RoomStatusAvailable,
	}, nil
}

// GetRateMoney returns the nightly rate as a Money value object
func (r *Room) GetRateMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(r.Rate)
}

// UpdateRate changes the nightly rate. Existing bookings keep the rate
// they were priced at; only future bookings see the new rate.
func (r *Room) UpdateRate(rate valueobject.Money) error {
	if !rate.IsPositive() {
		return shared.NewDomainError(shared.CodeValidationError, "Room rate must be positive")
	}
	r.Rate = rate.Amount()
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// UpdateDetails changes the administrative fields of a room
func (r *Room) UpdateDetails(roomType RoomType, capacity, floor int, description string) error {
	if !roomType.IsValid() {
		return shared.NewDomainError(shared.CodeValidationError, fmt.Sprintf("Unknown room type %q", roomType))
	}
	if capacity <= 0 {
		return shared.NewDomainError(shared.CodeValidationError, "Room capacity must be positive")
	}
	r.Type = roomType
	r.Capacity = capacity
	r.Floor = floor
	r.Description = description
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// MarkOccupied marks the room occupied by a checked-in guest
func (r *Room) MarkOccupied() {
	r.Status = RoomStatusOccupied
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// MarkAvailable releases the room back into the bookable pool
func (r *Room) MarkAvailable() {
	r.Status = RoomStatusAvailable
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// MarkMaintenance takes the room out of service
func (r *Room) MarkMaintenance() {
	r.Status = RoomStatusMaintenance
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// IsAvailable returns true if the room can be booked
func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}
