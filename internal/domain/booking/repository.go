package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	// FindByID finds a booking by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByReference finds a booking by its reference number
	FindByReference(ctx context.Context, reference string) (*Booking, error)

	// FindAll finds bookings with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Booking, error)

	// FindByStatus finds bookings in the given status
	FindByStatus(ctx context.Context, status BookingStatus, filter shared.Filter) ([]Booking, error)

	// FindByRoom finds bookings assigned to a room
	FindByRoom(ctx context.Context, roomID uuid.UUID, filter shared.Filter) ([]Booking, error)

	// FindOverlapping finds non-cancelled bookings of a room whose stay
	// overlaps the given date range. Used for availability checks.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]Booking, error)

	// FindDueForCheckOut finds checked-in bookings whose check-out date is on or before the given day
	FindDueForCheckOut(ctx context.Context, day time.Time) ([]Booking, error)

	// Save creates or updates a booking
	Save(ctx context.Context, b *Booking) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, b *Booking) error

	// Delete deletes a booking (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts bookings matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts bookings in the given status
	CountByStatus(ctx context.Context, status BookingStatus) (int64, error)

	// ExistsByReference checks if a booking reference is already taken
	ExistsByReference(ctx context.Context, reference string) (bool, error)

	// GenerateReference generates a unique booking reference
	GenerateReference(ctx context.Context) (string, error)
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByInvoiceNumber finds an invoice by its number
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)

	// FindByBooking finds all invoices issued for a booking
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]Invoice, error)

	// FindAll finds invoices with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, inv *Invoice) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// GenerateInvoiceNumber generates a unique invoice number
	GenerateInvoiceNumber(ctx context.Context) (string, error)
}
