package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/booking"
)

// ==================== Booking DTOs ====================

// GuestInput carries guest details on booking creation
type GuestInput struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"required,min=5,max=50"`
	Address  string `json:"address" binding:"max=500"`
	IDNumber string `json:"id_number" binding:"max=50"`
}

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	RoomID             uuid.UUID       `json:"room_id" binding:"required"`
	CheckInDate        time.Time       `json:"check_in_date" binding:"required"`
	CheckOutDate       time.Time       `json:"check_out_date" binding:"required"`
	Guest              GuestInput      `json:"guest" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
}

// CheckInRequest represents a check-in attempt. Date defaults to now.
type CheckInRequest struct {
	Date                    *time.Time `json:"date"`
	AcknowledgeDateMismatch bool       `json:"acknowledge_date_mismatch"`
}

// CheckOutRequest represents a check-out attempt
type CheckOutRequest struct {
	Date                    *time.Time `json:"date"`
	AcknowledgeDateMismatch bool       `json:"acknowledge_date_mismatch"`
}

// CancelBookingRequest represents a cancellation
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// AddChargeRequest represents a charge to append to the ledger
type AddChargeRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes" binding:"max=500"`
}

// ReverseChargeRequest represents a charge reversal
type ReverseChargeRequest struct {
	ChargeID uuid.UUID `json:"charge_id" binding:"required"`
	Notes    string    `json:"notes" binding:"max=500"`
}

// AddPaymentRequest represents a payment to append to the ledger
type AddPaymentRequest struct {
	Amount    decimal.Decimal       `json:"amount" binding:"required"`
	Method    booking.PaymentMethod `json:"method" binding:"required"`
	Reference string                `json:"reference" binding:"max=100"`
	Notes     string                `json:"notes" binding:"max=500"`
}

// ChangeRoomRequest represents a mid-stay room change. Discount and tax
// apply to the change itself and may differ from the booking's own.
type ChangeRoomRequest struct {
	NewRoomID          uuid.UUID                `json:"new_room_id" binding:"required"`
	Date               *time.Time               `json:"date"`
	Reason             booking.RoomChangeReason `json:"reason" binding:"required"`
	Notes              string                   `json:"notes" binding:"max=500"`
	DiscountPercentage decimal.Decimal          `json:"discount_percentage"`
	TaxRate            decimal.Decimal          `json:"tax_rate"`
}

// BookingListFilter represents filtering options for listing bookings
type BookingListFilter struct {
	Page     int                    `form:"page"`
	PageSize int                    `form:"page_size"`
	OrderBy  string                 `form:"order_by"`
	OrderDir string                 `form:"order_dir"`
	Search   string                 `form:"search"`
	Status   *booking.BookingStatus `form:"status"`
	RoomID   *uuid.UUID             `form:"room_id"`
}

// ==================== Responses ====================

// ChargeResponse represents a ledger charge
type ChargeResponse struct {
	ID               uuid.UUID       `json:"id"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Notes            string          `json:"notes,omitempty"`
	ReversesChargeID *uuid.UUID      `json:"reverses_charge_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CreatedBy        uuid.UUID       `json:"created_by"`
}

// PaymentResponse represents a ledger payment
type PaymentResponse struct {
	ID          uuid.UUID             `json:"id"`
	Amount      decimal.Decimal       `json:"amount"`
	Method      booking.PaymentMethod `json:"method"`
	Reference   string                `json:"reference,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	ProcessedAt time.Time             `json:"processed_at"`
	ReceivedBy  uuid.UUID             `json:"received_by"`
}

// RoomChangeResponse represents a room change audit record
type RoomChangeResponse struct {
	ID              uuid.UUID                `json:"id"`
	FromRoomNumber  string                   `json:"from_room_number"`
	ToRoomNumber    string                   `json:"to_room_number"`
	Date            time.Time                `json:"date"`
	Reason          booking.RoomChangeReason `json:"reason"`
	Notes           string                   `json:"notes,omitempty"`
	NightsAffected  int64                    `json:"nights_affected"`
	PriceAdjustment decimal.Decimal          `json:"price_adjustment"`
	ChangedBy       uuid.UUID                `json:"changed_by"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Reference          string                `json:"reference"`
	RoomID             uuid.UUID             `json:"room_id"`
	OriginalRoomID     uuid.UUID             `json:"original_room_id"`
	RoomNumber         string                `json:"room_number"`
	RoomRate           decimal.Decimal       `json:"room_rate"`
	CheckInDate        time.Time             `json:"check_in_date"`
	CheckOutDate       time.Time             `json:"check_out_date"`
	Nights             int64                 `json:"nights"`
	Guest              booking.GuestInfo     `json:"guest"`
	Status             booking.BookingStatus `json:"status"`
	PaymentStatus      booking.PaymentStatus `json:"payment_status"`
	BaseAmount         decimal.Decimal       `json:"base_amount"`
	DiscountPercentage decimal.Decimal       `json:"discount_percentage"`
	TaxRate            decimal.Decimal       `json:"tax_rate"`
	GrandTotal         decimal.Decimal       `json:"grand_total"`
	PaidAmount         decimal.Decimal       `json:"paid_amount"`
	DueBalance         decimal.Decimal       `json:"due_balance"`
	RoomChanges        []RoomChangeResponse  `json:"room_changes"`
	Charges            []ChargeResponse      `json:"charges"`
	Payments           []PaymentResponse     `json:"payments"`
	CancelReason       string                `json:"cancel_reason,omitempty"`
	CheckedInAt        *time.Time            `json:"checked_in_at,omitempty"`
	CheckedOutAt       *time.Time            `json:"checked_out_at,omitempty"`
	CancelledAt        *time.Time            `json:"cancelled_at,omitempty"`
	RefundedAt         *time.Time            `json:"refunded_at,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
	Version            int                   `json:"version"`
}

// DateMismatchWarningResponse flags an early/late check-in or check-out
type DateMismatchWarningResponse struct {
	Operation string    `json:"operation"`
	Scheduled time.Time `json:"scheduled"`
	Actual    time.Time `json:"actual"`
	Message   string    `json:"message"`
}

// TransitionResponse is returned by check-in and check-out. When a date
// mismatch warning is present and not yet acknowledged, Committed is
// false and the booking is unchanged.
type TransitionResponse struct {
	Booking   *BookingResponse             `json:"booking"`
	Warning   *DateMismatchWarningResponse `json:"warning,omitempty"`
	Committed bool                         `json:"committed"`
}

// BookingSummaryResponse bundles a booking with its full breakdown
type BookingSummaryResponse struct {
	Booking  BookingResponse          `json:"booking"`
	Charges  []ChargeResponse         `json:"charges"`
	Payments []PaymentResponse        `json:"payments"`
	Totals   booking.InvoiceBreakdown `json:"totals"`
}

// RoomChangeQuoteResponse is the preview of a room change's financials
type RoomChangeQuoteResponse struct {
	Quote booking.RoomChangeQuote `json:"quote"`
}

// InvoiceResponse represents a persisted invoice snapshot
type InvoiceResponse struct {
	ID            uuid.UUID                `json:"id"`
	InvoiceNumber string                   `json:"invoice_number"`
	BookingID     uuid.UUID                `json:"booking_id"`
	BookingRef    string                   `json:"booking_ref"`
	InvoiceDate   time.Time                `json:"invoice_date"`
	DueDate       time.Time                `json:"due_date"`
	Breakdown     booking.InvoiceBreakdown `json:"breakdown"`
	CreatedAt     time.Time                `json:"created_at"`
}

// ==================== Converters ====================

// ToChargeResponse converts a domain charge to a response
func ToChargeResponse(c booking.Charge) ChargeResponse {
	return ChargeResponse{
		ID:               c.ID,
		Description:      c.Description,
		Amount:           c.Amount,
		Notes:            c.Notes,
		ReversesChargeID: c.ReversesChargeID,
		CreatedAt:        c.CreatedAt,
		CreatedBy:        c.CreatedBy,
	}
}

// ToPaymentResponse converts a domain payment to a response
func ToPaymentResponse(p booking.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Amount:      p.Amount,
		Method:      p.Method,
		Reference:   p.Reference,
		Notes:       p.Notes,
		ProcessedAt: p.ProcessedAt,
		ReceivedBy:  p.ReceivedBy,
	}
}

// ToRoomChangeResponse converts a domain room change record to a response
func ToRoomChangeResponse(r booking.RoomChangeRecord) RoomChangeResponse {
	return RoomChangeResponse{
		ID:              r.ID,
		FromRoomNumber:  r.FromRoomNumber,
		ToRoomNumber:    r.ToRoomNumber,
		Date:            r.Date,
		Reason:          r.Reason,
		Notes:           r.Notes,
		NightsAffected:  r.NightsAffected,
		PriceAdjustment: r.PriceAdjustment,
		ChangedBy:       r.ChangedBy,
	}
}

// ToBookingResponse converts a domain booking to a response
func ToBookingResponse(b *booking.Booking) BookingResponse {
	charges := make([]ChargeResponse, len(b.Charges))
	for i, c := range b.Charges {
		charges[i] = ToChargeResponse(c)
	}
	payments := make([]PaymentResponse, len(b.Payments))
	for i, p := range b.Payments {
		payments[i] = ToPaymentResponse(p)
	}
	roomChanges := make([]RoomChangeResponse, len(b.RoomChanges))
	for i, r := range b.RoomChanges {
		roomChanges[i] = ToRoomChangeResponse(r)
	}

	return BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		RoomID:             b.RoomID,
		OriginalRoomID:     b.OriginalRoomID,
		RoomNumber:         b.RoomNumber,
		RoomRate:           b.RoomRate,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		Nights:             b.Nights(),
		Guest:              b.Guest,
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		BaseAmount:         b.BaseAmount,
		DiscountPercentage: b.DiscountPercentage,
		TaxRate:            b.TaxRate,
		GrandTotal:         b.GrandTotal,
		PaidAmount:         b.PaidAmount,
		DueBalance:         b.DueBalance,
		RoomChanges:        roomChanges,
		Charges:            charges,
		Payments:           payments,
		CancelReason:       b.CancelReason,
		CheckedInAt:        b.CheckedInAt,
		CheckedOutAt:       b.CheckedOutAt,
		CancelledAt:        b.CancelledAt,
		RefundedAt:         b.RefundedAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		Version:            b.GetVersion(),
	}
}

// ToTransitionResponse wraps a booking and an optional warning
func ToTransitionResponse(b *booking.Booking, w *booking.DateMismatchWarning, committed bool) TransitionResponse {
	resp := TransitionResponse{Committed: committed}
	if b != nil {
		br := ToBookingResponse(b)
		resp.Booking = &br
	}
	if w != nil {
		resp.Warning = &DateMismatchWarningResponse{
			Operation: w.Operation,
			Scheduled: w.Scheduled,
			Actual:    w.Actual,
			Message:   w.Message(),
		}
	}
	return resp
}

// ToBookingSummaryResponse builds the summary read model
func ToBookingSummaryResponse(b *booking.Booking) BookingSummaryResponse {
	br := ToBookingResponse(b)
	return BookingSummaryResponse{
		Booking:  br,
		Charges:  br.Charges,
		Payments: br.Payments,
		Totals:   b.ComputeInvoice(),
	}
}

// ToInvoiceResponse converts a persisted invoice to a response
func ToInvoiceResponse(inv *booking.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		BookingID:     inv.BookingID,
		BookingRef:    inv.BookingRef,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Breakdown:     inv.Breakdown(),
		CreatedAt:     inv.CreatedAt,
	}
}
