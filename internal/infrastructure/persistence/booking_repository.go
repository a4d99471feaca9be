package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/booking"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db              *gorm.DB
	referencePrefix string
}

// NewGormBookingRepository creates a new GormBookingRepository.
// referencePrefix is the leading token of generated booking references
// (e.g. "BK" produces BK-2026-0001).
func NewGormBookingRepository(db *gorm.DB, referencePrefix string) *GormBookingRepository {
	if referencePrefix == "" {
		referencePrefix = "BK"
	}
	return &GormBookingRepository{db: db, referencePrefix: referencePrefix}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByReference finds a booking by its reference number
func (r *GormBookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll finds bookings with filtering and pagination
func (r *GormBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(r.db.WithContext(ctx).Model(&booking.Booking{}), filter)
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByStatus finds bookings in the given status
func (r *GormBookingRepository) FindByStatus(ctx context.Context, status booking.BookingStatus, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&booking.Booking{}).Where("status = ?", status),
		filter,
	)
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByRoom finds bookings assigned to a room
func (r *GormBookingRepository) FindByRoom(ctx context.Context, roomID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&booking.Booking{}).Where("room_id = ?", roomID),
		filter,
	)
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindOverlapping finds non-cancelled bookings of a room whose stay
// overlaps [checkIn, checkOut). Two half-open ranges overlap when each
// starts before the other ends.
func (r *GormBookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]booking.Booking, error) {
	var bookings []booking.Booking
	if err := r.db.WithContext(ctx).
		Where("room_id = ? AND status NOT IN ?", roomID,
			[]booking.BookingStatus{booking.BookingStatusCancelled, booking.BookingStatusCheckedOut}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindDueForCheckOut finds checked-in bookings whose check-out date is on or before the given day
func (r *GormBookingRepository) FindDueForCheckOut(ctx context.Context, day time.Time) ([]booking.Booking, error) {
	endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	var bookings []booking.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ? AND check_out_date <= ?", booking.BookingStatusCheckedIn, endOfDay).
		Order("check_out_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Save creates or updates a booking
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// SaveWithLock saves with optimistic locking. Domain mutations increment
// the in-memory version, so the row is updated only while the stored
// version is still behind it; a lost race surfaces as
// ErrConcurrencyConflict instead of silently overwriting.
func (r *GormBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&booking.Booking{}).
			Where("id = ?", b.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			return err
		}
		if currentVersion == 0 {
			return shared.ErrNotFound
		}

		if b.Version <= currentVersion {
			return shared.ErrConcurrencyConflict
		}

		b.UpdatedAt = time.Now()

		result := tx.Model(&booking.Booking{}).
			Where("id = ? AND version = ?", b.ID, currentVersion).
			Updates(map[string]interface{}{
				"room_id":        b.RoomID,
				"room_number":    b.RoomNumber,
				"check_in_date":  b.CheckInDate,
				"check_out_date": b.CheckOutDate,
				"guest":          b.Guest,
				"status":         b.Status,
				"payment_status": b.PaymentStatus,
				"base_amount":    b.BaseAmount,
				"grand_total":    b.GrandTotal,
				"paid_amount":    b.PaidAmount,
				"due_balance":    b.DueBalance,
				"room_changes":   b.RoomChanges,
				"charges":        b.Charges,
				"payments":       b.Payments,
				"checked_in_at":  b.CheckedInAt,
				"checked_out_at": b.CheckedOutAt,
				"cancelled_at":   b.CancelledAt,
				"cancel_reason":  b.CancelReason,
				"refunded_at":    b.RefundedAt,
				"version":        b.Version,
				"updated_at":     b.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// Delete deletes a booking
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&booking.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&booking.Booking{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts bookings in the given status
func (r *GormBookingRepository) CountByStatus(ctx context.Context, status booking.BookingStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByReference checks if a booking reference is already taken
func (r *GormBookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("reference = ?", reference).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerateReference generates a unique booking reference.
// Format: BK-YYYY-NNNN (e.g. BK-2026-0042)
func (r *GormBookingRepository) GenerateReference(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("%s-%d-", r.referencePrefix, year)

	var lastBooking booking.Booking
	err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("reference LIKE ?", prefix+"%").
		Order("reference DESC").
		First(&lastBooking).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastBooking.Reference != "" {
		parts := strings.Split(lastBooking.Reference, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	reference := fmt.Sprintf("%s%04d", prefix, nextNum)

	exists, err := r.ExistsByReference(ctx, reference)
	if err != nil {
		return "", err
	}
	for i := 0; exists && i < 100; i++ {
		nextNum++
		reference = fmt.Sprintf("%s%04d", prefix, nextNum)
		exists, err = r.ExistsByReference(ctx, reference)
		if err != nil {
			return "", err
		}
	}

	return reference, nil
}

func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("created_at DESC")
	}

	return query
}

func (r *GormBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("reference ILIKE ? OR room_number ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "room_id":
			query = query.Where("room_id = ?", value)
		case "check_in_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("check_in_date >= ?", t)
			}
		case "check_in_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("check_in_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormBookingRepository implements BookingRepository
var _ booking.BookingRepository = (*GormBookingRepository)(nil)
