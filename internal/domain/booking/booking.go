package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

// DateMismatchWarning flags a check-in or check-out attempted on a date
// other than the booked one. It is not an error: front desk staff may
// confirm an early/late transition, so the caller must acknowledge the
// warning before the transition commits.
type DateMismatchWarning struct {
	Operation string    `json:"operation"` // "check_in" or "check_out"
	Scheduled time.Time `json:"scheduled"`
	Actual    time.Time `json:"actual"`
}

// IsEarly returns true if the operation is ahead of schedule
func (w *DateMismatchWarning) IsEarly() bool {
	return w.Actual.Before(w.Scheduled)
}

// Message returns a human-readable description of the mismatch
func (w *DateMismatchWarning) Message() string {
	kind := "late"
	if w.IsEarly() {
		kind = "early"
	}
	return fmt.Sprintf("%s %s: scheduled %s, attempted %s",
		kind, w.Operation, w.Scheduled.Format("2006-01-02"), w.Actual.Format("2006-01-02"))
}

// Booking is the aggregate root for a guest's stay. It owns the status
// and payment-status state machines, the append-only charge/payment
// ledger, and the room-change audit trail. All mutations recompute the
// stored totals from the ledger, so paidAmount + dueBalance == grandTotal
// holds after every operation and PaymentStatus never drifts from the
// ledger.
type Booking struct {
	shared.AuditedAggregateRoot
	Reference      string    `gorm:"uniqueIndex;size:50;not null"`
	RoomID         uuid.UUID `gorm:"type:uuid;index;not null"`
	OriginalRoomID uuid.UUID `gorm:"type:uuid;not null"` // first-assigned room, never changes
	RoomNumber     string    `gorm:"size:20"`

	// RoomRate is the nightly rate the stay was priced at. Mid-stay room
	// changes adjust the ledger through charges instead of repricing the
	// room subtotal, so this snapshot stays fixed for the booking's life.
	RoomRate decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CheckInDate  time.Time `gorm:"not null"`
	CheckOutDate time.Time `gorm:"not null"`
	Guest        GuestInfo `gorm:"type:jsonb"`

	Status        BookingStatus `gorm:"size:20;not null;index"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;index"`

	BaseAmount         decimal.Decimal `gorm:"type:decimal(12,2)"` // room total before discount
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)"`
	TaxRate            decimal.Decimal `gorm:"type:decimal(5,2)"`
	GrandTotal         decimal.Decimal `gorm:"type:decimal(12,2)"`
	PaidAmount         decimal.Decimal `gorm:"type:decimal(12,2)"`
	DueBalance         decimal.Decimal `gorm:"type:decimal(12,2)"`

	RoomChanges RoomChangeRecords `gorm:"type:jsonb"`
	Charges     Charges           `gorm:"type:jsonb"`
	Payments    Payments          `gorm:"type:jsonb"`

	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time
	CancelReason string `gorm:"size:500"`
	RefundedAt   *time.Time
}

// NewBooking creates a confirmed booking for the given room and stay.
// The room's current rate is snapshotted as the pricing base.
func NewBooking(reference string, room *hotel.Room, checkInDate, checkOutDate time.Time, guest GuestInfo, discount, taxRate valueobject.Percentage, createdBy uuid.UUID) (*Booking, error) {
	if reference == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Booking reference cannot be empty")
	}
	if len(reference) > 50 {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Booking reference cannot exceed 50 characters")
	}
	if room == nil {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room is required")
	}
	if guest.IsEmpty() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Guest information is required")
	}
	if !checkOutDate.After(checkInDate) {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Check-out date must be after check-in date")
	}

	b := &Booking{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Reference:            reference,
		RoomID:               room.ID,
		OriginalRoomID:       room.ID,
		RoomNumber:           room.Number,
		RoomRate:             room.Rate,
		CheckInDate:          checkInDate,
		CheckOutDate:         checkOutDate,
		Guest:                guest,
		Status:               BookingStatusConfirmed,
		PaymentStatus:        PaymentStatusUnpaid,
		DiscountPercentage:   discount.Decimal(),
		TaxRate:              taxRate.Decimal(),
		RoomChanges:          RoomChangeRecords{},
		Charges:              Charges{},
		Payments:             Payments{},
	}
	b.recomputeTotals()

	b.AddDomainEvent(NewBookingConfirmedEvent(b))

	return b, nil
}

// Nights returns the length of the stay in whole nights
func (b *Booking) Nights() int64 {
	return nightsBetween(b.CheckInDate, b.CheckOutDate)
}

// CheckIn transitions the booking to CHECKED_IN. If today is not the
// booked check-in date and the caller has not acknowledged the mismatch,
// the returned warning is populated and the booking is left untouched.
func (b *Booking) CheckIn(today time.Time, acknowledgeDateMismatch bool) (*DateMismatchWarning, error) {
	if !b.Status.CanTransitionTo(BookingStatusCheckedIn) {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot check in booking in %s status", b.Status))
	}

	var warning *DateMismatchWarning
	if !sameCalendarDay(today, b.CheckInDate) {
		warning = &DateMismatchWarning{Operation: "check_in", Scheduled: b.CheckInDate, Actual: today}
		if !acknowledgeDateMismatch {
			return warning, nil
		}
	}

	now := time.Now()
	b.Status = BookingStatusCheckedIn
	b.CheckedInAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()

	b.AddDomainEvent(NewBookingCheckedInEvent(b))

	return warning, nil
}

// CheckOut transitions the booking to CHECKED_OUT with the same
// date-mismatch acknowledgement policy as CheckIn. Settlement is not
// required; an unpaid balance survives checkout as an open due.
func (b *Booking) CheckOut(today time.Time, acknowledgeDateMismatch bool) (*DateMismatchWarning, error) {
	if !b.Status.CanTransitionTo(BookingStatusCheckedOut) {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot check out booking in %s status", b.Status))
	}

	var warning *DateMismatchWarning
	if !sameCalendarDay(today, b.CheckOutDate) {
		warning = &DateMismatchWarning{Operation: "check_out", Scheduled: b.CheckOutDate, Actual: today}
		if !acknowledgeDateMismatch {
			return warning, nil
		}
	}

	now := time.Now()
	b.Status = BookingStatusCheckedOut
	b.CheckedOutAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()

	b.AddDomainEvent(NewBookingCheckedOutEvent(b))

	return warning, nil
}

// Cancel cancels the booking. Allowed from CONFIRMED or CHECKED_IN; the
// ledger does not need to be settled first.
func (b *Booking) Cancel(reason string) error {
	if !b.Status.CanTransitionTo(BookingStatusCancelled) {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot cancel booking in %s status", b.Status))
	}
	if reason == "" {
		return shared.NewDomainError(shared.CodeValidationError, "Cancel reason is required")
	}

	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	b.CancelReason = reason
	b.UpdatedAt = now
	b.IncrementVersion()

	b.AddDomainEvent(NewBookingCancelledEvent(b))

	return nil
}

// AddCharge appends a charge to the ledger and recomputes totals.
// The booking status is unaffected.
func (b *Booking) AddCharge(description string, amount valueobject.Money, notes string, createdBy uuid.UUID) (*Charge, error) {
	if b.Status == BookingStatusCancelled {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition, "Cannot add charges to a cancelled booking")
	}
	if description == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Charge description cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Charge amount must be positive")
	}

	charge := newCharge(b.ID, description, amount.Amount(), notes, createdBy)
	b.Charges = append(b.Charges, charge)
	b.recomputeTotals()
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewChargeAddedEvent(b, &charge))

	return &charge, nil
}

// ReverseCharge appends an offsetting entry for an earlier charge.
// History is never mutated in place; the reversal keeps the audit trail
// while zeroing the original's effect on the totals.
func (b *Booking) ReverseCharge(chargeID uuid.UUID, notes string, createdBy uuid.UUID) (*Charge, error) {
	if b.Status == BookingStatusCancelled {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition, "Cannot reverse charges on a cancelled booking")
	}

	var original *Charge
	for i := range b.Charges {
		if b.Charges[i].ID == chargeID {
			original = &b.Charges[i]
			break
		}
	}
	if original == nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Charge not found")
	}
	if original.IsReversal() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Cannot reverse a reversal entry")
	}
	for i := range b.Charges {
		if b.Charges[i].ReversesChargeID != nil && *b.Charges[i].ReversesChargeID == chargeID {
			return nil, shared.NewDomainError(shared.CodeValidationError, "Charge has already been reversed")
		}
	}

	originalID := original.ID
	reversal := newCharge(b.ID, "Reversal: "+original.Description, original.Amount.Neg(), notes, createdBy)
	reversal.ReversesChargeID = &originalID
	b.Charges = append(b.Charges, reversal)
	b.recomputeTotals()
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return &reversal, nil
}

// AddPayment appends a payment to the ledger. A payment exceeding the
// due balance computed before it is rejected outright rather than
// clamped; clamping would silently hide a guest or staff error.
func (b *Booking) AddPayment(amount valueobject.Money, method PaymentMethod, reference, notes string, receivedBy uuid.UUID) (*Payment, error) {
	if b.Status == BookingStatusCancelled {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition, "Cannot record payments on a cancelled booking")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError(shared.CodeValidationError, fmt.Sprintf("Unknown payment method %q", method))
	}

	due := b.ComputeInvoice().DueBalance
	if amount.Amount().GreaterThan(due) {
		return nil, shared.NewDomainError(shared.CodeOverpaymentRejected,
			fmt.Sprintf("Payment amount %s exceeds due balance %s", amount.Amount(), due))
	}

	payment := newPayment(b.ID, amount.Amount(), method, reference, notes, receivedBy)
	b.Payments = append(b.Payments, payment)
	b.recomputeTotals()
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewPaymentReceivedEvent(b, &payment))

	return &payment, nil
}

// Refund marks the payment status as REFUNDED. This is the only path to
// that status and applies only to cancelled bookings with money paid in.
func (b *Booking) Refund() error {
	if b.Status != BookingStatusCancelled {
		return shared.NewDomainError(shared.CodeInvalidTransition, "Only cancelled bookings can be refunded")
	}
	if !b.PaidAmount.IsPositive() {
		return shared.NewDomainError(shared.CodeValidationError, "Booking has no payments to refund")
	}
	if b.PaymentStatus == PaymentStatusRefunded {
		return shared.NewDomainError(shared.CodeValidationError, "Booking has already been refunded")
	}

	now := time.Now()
	b.PaymentStatus = PaymentStatusRefunded
	b.RefundedAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()

	return nil
}

// ChangeRoom moves the guest to a different room mid-stay. The financial
// delta is prorated over the remaining nights (see ComputeRoomChangeQuote)
// and enters the ledger as a single charge, or a negative credit entry
// for downgrades. The charge carries the pre-tax subtotal delta: the
// invoice pipeline taxes additional charges itself, so booking VAT on
// the ledger entry would count it twice. A RoomChangeRecord is appended
// even when the adjustment is zero, because the audit trail must note
// the move itself.
func (b *Booking) ChangeRoom(currentRoom, newRoom *hotel.Room, discount, taxRate valueobject.Percentage, today time.Time, reason RoomChangeReason, notes string, changedBy uuid.UUID) (*RoomChangeRecord, error) {
	if b.Status != BookingStatusCheckedIn {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Room changes require a checked-in booking, not %s", b.Status))
	}
	if currentRoom == nil || newRoom == nil {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Both current and new room are required")
	}
	if currentRoom.ID != b.RoomID {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Current room does not match the booking's assigned room")
	}
	if newRoom.ID == b.RoomID {
		return nil, shared.NewDomainError(shared.CodeNoOpRoomChange, "Booking is already assigned to this room")
	}
	if !reason.IsValid() {
		return nil, shared.NewDomainError(shared.CodeValidationError, fmt.Sprintf("Unknown room change reason %q", reason))
	}

	quote := ComputeRoomChangeQuote(currentRoom.Rate, newRoom.Rate, discount, taxRate, b.CheckOutDate, today)

	record := RoomChangeRecord{
		ID:              uuid.New(),
		FromRoomNumber:  currentRoom.Number,
		ToRoomNumber:    newRoom.Number,
		Date:            today,
		Reason:          reason,
		Notes:           notes,
		NightsAffected:  quote.RemainingNights,
		PriceAdjustment: quote.TotalAdjustment,
		ChangedBy:       changedBy,
	}
	b.RoomChanges = append(b.RoomChanges, record)

	if !quote.SubtotalDelta.IsZero() {
		description := fmt.Sprintf("Room change %s -> %s (%d nights)",
			currentRoom.Number, newRoom.Number, quote.RemainingNights)
		adjustment := newCharge(b.ID, description, quote.SubtotalDelta, notes, changedBy)
		b.Charges = append(b.Charges, adjustment)
	}

	b.RoomID = newRoom.ID
	b.RoomNumber = newRoom.Number
	b.recomputeTotals()
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewRoomChangedEvent(b, &record))

	return &record, nil
}

// ComputeInvoice projects the current ledger through the billing
// pipeline. Pure and idempotent over an unchanged ledger.
func (b *Booking) ComputeInvoice() InvoiceBreakdown {
	return computeInvoice(b.Nights(), b.RoomRate, b.DiscountPercentage, b.TaxRate, b.Charges, b.Payments)
}

// recomputeTotals refreshes the stored totals from the ledger. A
// REFUNDED payment status is sticky: it is set only by Refund and never
// reverted by recomputation.
func (b *Booking) recomputeTotals() {
	bd := b.ComputeInvoice()
	b.BaseAmount = bd.OriginalSubtotal
	b.GrandTotal = bd.GrandTotal
	b.PaidAmount = bd.PaidAmount
	b.DueBalance = bd.DueBalance
	if b.PaymentStatus != PaymentStatusRefunded {
		b.PaymentStatus = PaymentStatusFor(bd.PaidAmount, bd.GrandTotal)
	}
}

// Helper methods

// GetGrandTotalMoney returns the grand total as Money
func (b *Booking) GetGrandTotalMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(b.GrandTotal)
}

// GetPaidAmountMoney returns the paid amount as Money
func (b *Booking) GetPaidAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(b.PaidAmount)
}

// GetDueBalanceMoney returns the due balance as Money
func (b *Booking) GetDueBalanceMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(b.DueBalance)
}

// IsConfirmed returns true if the booking is confirmed and not yet checked in
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCheckedIn returns true if the guest is currently in-house
func (b *Booking) IsCheckedIn() bool {
	return b.Status == BookingStatusCheckedIn
}

// IsCheckedOut returns true if the stay has ended
func (b *Booking) IsCheckedOut() bool {
	return b.Status == BookingStatusCheckedOut
}

// IsCancelled returns true if the booking was cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsTerminal returns true if no further status transition is possible
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// ChargeCount returns the number of ledger charges
func (b *Booking) ChargeCount() int {
	return len(b.Charges)
}

// PaymentCount returns the number of ledger payments
func (b *Booking) PaymentCount() int {
	return len(b.Payments)
}

// RoomChangeCount returns the number of room changes in the audit trail
func (b *Booking) RoomChangeCount() int {
	return len(b.RoomChanges)
}

// sameCalendarDay compares two instants by calendar date in UTC
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
