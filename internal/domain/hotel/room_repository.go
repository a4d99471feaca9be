package hotel

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// RoomRepository defines persistence operations for rooms
type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	FindByNumber(ctx context.Context, number string) (*Room, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Room, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindAvailableBetween returns rooms with no overlapping non-cancelled
	// booking in [checkIn, checkOut) and not under maintenance.
	FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]Room, error)

	Save(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}
