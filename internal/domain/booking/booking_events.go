package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeBooking = "Booking"

// Event type constants
const (
	EventTypeBookingConfirmed  = "BookingConfirmed"
	EventTypeBookingCheckedIn  = "BookingCheckedIn"
	EventTypeBookingCheckedOut = "BookingCheckedOut"
	EventTypeBookingCancelled  = "BookingCancelled"
	EventTypeChargeAdded       = "ChargeAdded"
	EventTypePaymentReceived   = "PaymentReceived"
	EventTypeRoomChanged       = "RoomChanged"
)

// BookingConfirmedEvent is raised when a new booking is created
type BookingConfirmedEvent struct {
	shared.BaseDomainEvent
	BookingID    uuid.UUID       `json:"booking_id"`
	Reference    string          `json:"reference"`
	RoomID       uuid.UUID       `json:"room_id"`
	RoomNumber   string          `json:"room_number"`
	GuestName    string          `json:"guest_name"`
	CheckInDate  time.Time       `json:"check_in_date"`
	CheckOutDate time.Time       `json:"check_out_date"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// NewBookingConfirmedEvent creates a new BookingConfirmedEvent
func NewBookingConfirmedEvent(b *Booking) *BookingConfirmedEvent {
	return &BookingConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingConfirmed, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		GuestName:       b.Guest.Name,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		GrandTotal:      b.GrandTotal,
	}
}

// EventType returns the event type name
func (e *BookingConfirmedEvent) EventType() string {
	return EventTypeBookingConfirmed
}

// BookingCheckedInEvent is raised when the guest checks in.
// This event triggers the room's transition to OCCUPIED.
type BookingCheckedInEvent struct {
	shared.BaseDomainEvent
	BookingID  uuid.UUID `json:"booking_id"`
	Reference  string    `json:"reference"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	GuestName  string    `json:"guest_name"`
}

// NewBookingCheckedInEvent creates a new BookingCheckedInEvent
func NewBookingCheckedInEvent(b *Booking) *BookingCheckedInEvent {
	return &BookingCheckedInEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCheckedIn, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		GuestName:       b.Guest.Name,
	}
}

// EventType returns the event type name
func (e *BookingCheckedInEvent) EventType() string {
	return EventTypeBookingCheckedIn
}

// BookingCheckedOutEvent is raised when the stay ends.
// This event triggers the room's release and final invoice generation.
type BookingCheckedOutEvent struct {
	shared.BaseDomainEvent
	BookingID  uuid.UUID       `json:"booking_id"`
	Reference  string          `json:"reference"`
	RoomID     uuid.UUID       `json:"room_id"`
	RoomNumber string          `json:"room_number"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	DueBalance decimal.Decimal `json:"due_balance"`
}

// NewBookingCheckedOutEvent creates a new BookingCheckedOutEvent
func NewBookingCheckedOutEvent(b *Booking) *BookingCheckedOutEvent {
	return &BookingCheckedOutEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCheckedOut, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		GrandTotal:      b.GrandTotal,
		DueBalance:      b.DueBalance,
	}
}

// EventType returns the event type name
func (e *BookingCheckedOutEvent) EventType() string {
	return EventTypeBookingCheckedOut
}

// BookingCancelledEvent is raised when a booking is cancelled.
// If WasCheckedIn is true, the room needs to be released.
type BookingCancelledEvent struct {
	shared.BaseDomainEvent
	BookingID    uuid.UUID       `json:"booking_id"`
	Reference    string          `json:"reference"`
	RoomID       uuid.UUID       `json:"room_id"`
	CancelReason string          `json:"cancel_reason"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	WasCheckedIn bool            `json:"was_checked_in"`
}

// NewBookingCancelledEvent creates a new BookingCancelledEvent
func NewBookingCancelledEvent(b *Booking) *BookingCancelledEvent {
	return &BookingCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCancelled, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		RoomID:          b.RoomID,
		CancelReason:    b.CancelReason,
		PaidAmount:      b.PaidAmount,
		WasCheckedIn:    b.CheckedInAt != nil,
	}
}

// EventType returns the event type name
func (e *BookingCancelledEvent) EventType() string {
	return EventTypeBookingCancelled
}

// ChargeAddedEvent is raised when a charge enters the ledger
type ChargeAddedEvent struct {
	shared.BaseDomainEvent
	BookingID   uuid.UUID       `json:"booking_id"`
	Reference   string          `json:"reference"`
	ChargeID    uuid.UUID       `json:"charge_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// NewChargeAddedEvent creates a new ChargeAddedEvent
func NewChargeAddedEvent(b *Booking, charge *Charge) *ChargeAddedEvent {
	return &ChargeAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeChargeAdded, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		ChargeID:        charge.ID,
		Description:     charge.Description,
		Amount:          charge.Amount,
		GrandTotal:      b.GrandTotal,
	}
}

// EventType returns the event type name
func (e *ChargeAddedEvent) EventType() string {
	return EventTypeChargeAdded
}

// PaymentReceivedEvent is raised when a payment enters the ledger
type PaymentReceivedEvent struct {
	shared.BaseDomainEvent
	BookingID     uuid.UUID       `json:"booking_id"`
	Reference     string          `json:"reference"`
	PaymentID     uuid.UUID       `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueBalance    decimal.Decimal `json:"due_balance"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
}

// NewPaymentReceivedEvent creates a new PaymentReceivedEvent
func NewPaymentReceivedEvent(b *Booking, payment *Payment) *PaymentReceivedEvent {
	return &PaymentReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentReceived, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		PaymentID:       payment.ID,
		Amount:          payment.Amount,
		Method:          payment.Method,
		PaidAmount:      b.PaidAmount,
		DueBalance:      b.DueBalance,
		PaymentStatus:   b.PaymentStatus,
	}
}

// EventType returns the event type name
func (e *PaymentReceivedEvent) EventType() string {
	return EventTypePaymentReceived
}

// RoomChangedEvent is raised when the guest moves to a different room.
// This event triggers occupancy updates on both rooms.
type RoomChangedEvent struct {
	shared.BaseDomainEvent
	BookingID       uuid.UUID       `json:"booking_id"`
	Reference       string          `json:"reference"`
	FromRoomNumber  string          `json:"from_room_number"`
	ToRoomNumber    string          `json:"to_room_number"`
	ToRoomID        uuid.UUID       `json:"to_room_id"`
	NightsAffected  int64           `json:"nights_affected"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// NewRoomChangedEvent creates a new RoomChangedEvent
func NewRoomChangedEvent(b *Booking, record *RoomChangeRecord) *RoomChangedEvent {
	return &RoomChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRoomChanged, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		Reference:       b.Reference,
		FromRoomNumber:  record.FromRoomNumber,
		ToRoomNumber:    record.ToRoomNumber,
		ToRoomID:        b.RoomID,
		NightsAffected:  record.NightsAffected,
		PriceAdjustment: record.PriceAdjustment,
	}
}

// EventType returns the event type name
func (e *RoomChangedEvent) EventType() string {
	return EventTypeRoomChanged
}
