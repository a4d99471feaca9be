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

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db           *gorm.DB
	numberPrefix string
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository.
// numberPrefix is the leading token of generated invoice numbers
// (e.g. "INV" produces INV-2026-0001).
func NewGormInvoiceRepository(db *gorm.DB, numberPrefix string) *GormInvoiceRepository {
	if numberPrefix == "" {
		numberPrefix = "INV"
	}
	return &GormInvoiceRepository{db: db, numberPrefix: numberPrefix}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Invoice, error) {
	var inv booking.Invoice
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByInvoiceNumber finds an invoice by its number
func (r *GormInvoiceRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*booking.Invoice, error) {
	var inv booking.Invoice
	if err := r.db.WithContext(ctx).
		Where("invoice_number = ?", invoiceNumber).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByBooking finds all invoices issued for a booking, newest first
func (r *GormInvoiceRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]booking.Invoice, error) {
	var invoices []booking.Invoice
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindAll finds invoices with filtering and pagination
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Invoice, error) {
	var invoices []booking.Invoice
	query := r.applyFilter(r.db.WithContext(ctx).Model(&booking.Invoice{}), filter)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *booking.Invoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&booking.Invoice{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateInvoiceNumber generates a unique invoice number.
// Format: INV-YYYY-NNNN (e.g. INV-2026-0007)
func (r *GormInvoiceRepository) GenerateInvoiceNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("%s-%d-", r.numberPrefix, year)

	var lastInvoice booking.Invoice
	err := r.db.WithContext(ctx).
		Model(&booking.Invoice{}).
		Where("invoice_number LIKE ?", prefix+"%").
		Order("invoice_number DESC").
		First(&lastInvoice).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastInvoice.InvoiceNumber != "" {
		parts := strings.Split(lastInvoice.InvoiceNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, nextNum), nil
}

func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("invoice_number ILIKE ? OR booking_ref ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "booking_id":
			query = query.Where("booking_id = ?", value)
		case "issued_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("invoice_date >= ?", t)
			}
		case "issued_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("invoice_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ booking.InvoiceRepository = (*GormInvoiceRepository)(nil)
