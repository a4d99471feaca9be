package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ============================================
// BookingStatus Tests
// ============================================

func TestBookingStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  BookingStatus
		isValid bool
	}{
		{BookingStatusConfirmed, true},
		{BookingStatusCheckedIn, true},
		{BookingStatusCheckedOut, true},
		{BookingStatusCancelled, true},
		{BookingStatus("INVALID"), false},
		{BookingStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     BookingStatus
		to       BookingStatus
		canTrans bool
	}{
		// From CONFIRMED
		{BookingStatusConfirmed, BookingStatusCheckedIn, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCheckedOut, false},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		// From CHECKED_IN
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, true},
		{BookingStatusCheckedIn, BookingStatusConfirmed, false},
		{BookingStatusCheckedIn, BookingStatusCheckedIn, false},
		// From CHECKED_OUT (terminal)
		{BookingStatusCheckedOut, BookingStatusConfirmed, false},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCheckedOut, BookingStatusCancelled, false},
		{BookingStatusCheckedOut, BookingStatusCheckedOut, false},
		// From CANCELLED (terminal)
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCheckedIn, false},
		{BookingStatusCancelled, BookingStatusCheckedOut, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.False(t, BookingStatusCheckedIn.IsTerminal())
	assert.True(t, BookingStatusCheckedOut.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}

// ============================================
// PaymentStatus Tests
// ============================================

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		paid       decimal.Decimal
		grandTotal decimal.Decimal
		expected   PaymentStatus
	}{
		{"nothing paid", decimal.Zero, decimal.NewFromInt(14175), PaymentStatusUnpaid},
		{"partially paid", decimal.NewFromInt(5000), decimal.NewFromInt(14175), PaymentStatusPartial},
		{"exactly paid", decimal.NewFromInt(14175), decimal.NewFromInt(14175), PaymentStatusPaid},
		{"zero total zero paid", decimal.Zero, decimal.Zero, PaymentStatusUnpaid},
		{"one unit short", decimal.NewFromInt(14174), decimal.NewFromInt(14175), PaymentStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PaymentStatusFor(tt.paid, tt.grandTotal))
		})
	}
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, PaymentStatusUnpaid.IsValid())
	assert.True(t, PaymentStatusPartial.IsValid())
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusRefunded.IsValid())
	assert.False(t, PaymentStatus("PENDING").IsValid())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodBankTransfer.IsValid())
	assert.True(t, PaymentMethodMobileWallet.IsValid())
	assert.False(t, PaymentMethod("CHEQUE").IsValid())
}
