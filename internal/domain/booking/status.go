package booking

import "github.com/shopspring/decimal"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The graph is forward-only: CONFIRMED -> CHECKED_IN -> CHECKED_OUT, with
// cancellation allowed from either pre-checkout state.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed:
		return target == BookingStatusCheckedIn || target == BookingStatusCancelled
	case BookingStatusCheckedIn:
		return target == BookingStatusCheckedOut || target == BookingStatusCancelled
	case BookingStatusCheckedOut, BookingStatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true if no transition leaves this status
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

// PaymentStatus represents how much of the grand total has been settled
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPartial  PaymentStatus = "PARTIAL"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentStatusFor derives the payment status from the ledger totals.
// It is the only place this mapping lives; PaymentStatus is never set
// independently of (paidAmount, grandTotal) except by an explicit refund.
func PaymentStatusFor(paidAmount, grandTotal decimal.Decimal) PaymentStatus {
	switch {
	case paidAmount.IsZero():
		return PaymentStatusUnpaid
	case paidAmount.GreaterThanOrEqual(grandTotal):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}
