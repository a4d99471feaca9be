package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/booking"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// GormRoomRepository implements RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID finds a room by its ID
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Room, error) {
	var room hotel.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindByNumber finds a room by its room number
func (r *GormRoomRepository) FindByNumber(ctx context.Context, number string) (*hotel.Room, error) {
	var room hotel.Room
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindAll finds rooms with filtering and pagination
func (r *GormRoomRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hotel.Room, error) {
	var rooms []hotel.Room
	query := r.applyFilter(r.db.WithContext(ctx).Model(&hotel.Room{}), filter)
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Count counts rooms matching the filter
func (r *GormRoomRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&hotel.Room{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAvailableBetween finds rooms free for the whole [checkIn, checkOut)
// range: not under maintenance, and without a live booking whose stay
// overlaps the range. The room's current occupancy status is not enough
// on its own since a future booking also blocks the range.
func (r *GormRoomRepository) FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]hotel.Room, error) {
	var rooms []hotel.Room
	subQuery := r.db.
		Model(&booking.Booking{}).
		Select("room_id").
		Where("status NOT IN ?", []booking.BookingStatus{booking.BookingStatusCancelled, booking.BookingStatusCheckedOut}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	if err := r.db.WithContext(ctx).
		Where("status <> ?", hotel.RoomStatusMaintenance).
		Where("id NOT IN (?)", subQuery).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Save creates or updates a room
func (r *GormRoomRepository) Save(ctx context.Context, room *hotel.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// Delete deletes a room
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hotel.Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormRoomRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("number ASC")
	}

	return query
}

func (r *GormRoomRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "floor":
			query = query.Where("floor = ?", value)
		}
	}

	return query
}

// Ensure GormRoomRepository implements RoomRepository
var _ hotel.RoomRepository = (*GormRoomRepository)(nil)
