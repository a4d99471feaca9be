package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

// Test helpers

var (
	testCheckInDate  = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	testCheckOutDate = time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC) // 3 nights
)

func createTestRoom(t *testing.T, number string, rate float64) *hotel.Room {
	t.Helper()
	room, err := hotel.NewRoom(number, hotel.RoomTypeDeluxe, 2, valueobject.NewMoneyBDTFromFloat(rate))
	require.NoError(t, err)
	return room
}

func createTestGuest(t *testing.T) GuestInfo {
	t.Helper()
	guest, err := NewGuestInfo("Rahim Uddin", "rahim@example.com", "+8801712345678", "Dhaka", "NID-1234567890")
	require.NoError(t, err)
	return guest
}

// createTestBooking builds a 3-night stay at 5000/night with 10%
// discount and 5% tax: subtotal 15000, discount 1500, tax 675,
// grand total 14175.
func createTestBooking(t *testing.T, room *hotel.Room) *Booking {
	t.Helper()
	b, err := NewBooking("BK-2026-0001", room, testCheckInDate, testCheckOutDate, createTestGuest(t),
		valueobject.MustPercentage(10), valueobject.MustPercentage(5), uuid.New())
	require.NoError(t, err)
	return b
}

func checkInTestBooking(t *testing.T, b *Booking) {
	t.Helper()
	warning, err := b.CheckIn(testCheckInDate, false)
	require.NoError(t, err)
	require.Nil(t, warning)
	require.Equal(t, BookingStatusCheckedIn, b.Status)
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, code, de.Code)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

// ============================================
// NewBooking Tests
// ============================================

func TestNewBooking(t *testing.T) {
	room := createTestRoom(t, "101", 5000)

	t.Run("creates confirmed booking with computed totals", func(t *testing.T) {
		b := createTestBooking(t, room)

		assert.Equal(t, "BK-2026-0001", b.Reference)
		assert.Equal(t, BookingStatusConfirmed, b.Status)
		assert.Equal(t, PaymentStatusUnpaid, b.PaymentStatus)
		assert.Equal(t, room.ID, b.RoomID)
		assert.Equal(t, room.ID, b.OriginalRoomID)
		assert.Equal(t, "101", b.RoomNumber)
		assert.EqualValues(t, 3, b.Nights())

		assertDecimal(t, "15000", b.BaseAmount)
		assertDecimal(t, "14175", b.GrandTotal)
		assertDecimal(t, "0", b.PaidAmount)
		assertDecimal(t, "14175", b.DueBalance)

		assert.Len(t, b.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeBookingConfirmed, b.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := NewBooking("", room, testCheckInDate, testCheckOutDate, createTestGuest(t),
			valueobject.ZeroPercent(), valueobject.ZeroPercent(), uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejects nil room", func(t *testing.T) {
		_, err := NewBooking("BK-2026-0002", nil, testCheckInDate, testCheckOutDate, createTestGuest(t),
			valueobject.ZeroPercent(), valueobject.ZeroPercent(), uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejects check-out not after check-in", func(t *testing.T) {
		_, err := NewBooking("BK-2026-0003", room, testCheckInDate, testCheckInDate, createTestGuest(t),
			valueobject.ZeroPercent(), valueobject.ZeroPercent(), uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)

		_, err = NewBooking("BK-2026-0003", room, testCheckOutDate, testCheckInDate, createTestGuest(t),
			valueobject.ZeroPercent(), valueobject.ZeroPercent(), uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejects missing guest", func(t *testing.T) {
		_, err := NewBooking("BK-2026-0004", room, testCheckInDate, testCheckOutDate, GuestInfo{},
			valueobject.ZeroPercent(), valueobject.ZeroPercent(), uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})
}

// ============================================
// Check-in / Check-out Tests
// ============================================

func TestBooking_CheckIn(t *testing.T) {
	t.Run("on the booked date, no warning", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		warning, err := b.CheckIn(testCheckInDate, false)
		require.NoError(t, err)
		assert.Nil(t, warning)
		assert.Equal(t, BookingStatusCheckedIn, b.Status)
		assert.NotNil(t, b.CheckedInAt)
	})

	t.Run("date mismatch without acknowledgement leaves booking untouched", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		early := testCheckInDate.AddDate(0, 0, -1)

		warning, err := b.CheckIn(early, false)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, "check_in", warning.Operation)
		assert.True(t, warning.IsEarly())
		assert.Equal(t, BookingStatusConfirmed, b.Status)
		assert.Nil(t, b.CheckedInAt)
	})

	t.Run("date mismatch with acknowledgement transitions", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		late := testCheckInDate.AddDate(0, 0, 1)

		warning, err := b.CheckIn(late, true)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.False(t, warning.IsEarly())
		assert.Equal(t, BookingStatusCheckedIn, b.Status)
	})

	t.Run("rejected from terminal states", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		require.NoError(t, b.Cancel("guest request"))

		_, err := b.CheckIn(testCheckInDate, true)
		assertErrorCode(t, err, shared.CodeInvalidTransition)
	})
}

func TestBooking_CheckOut(t *testing.T) {
	t.Run("rejected from confirmed", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		_, err := b.CheckOut(testCheckOutDate, false)
		assertErrorCode(t, err, shared.CodeInvalidTransition)
		assert.Equal(t, BookingStatusConfirmed, b.Status)
	})

	t.Run("on the booked date, no warning", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		checkInTestBooking(t, b)

		warning, err := b.CheckOut(testCheckOutDate, false)
		require.NoError(t, err)
		assert.Nil(t, warning)
		assert.Equal(t, BookingStatusCheckedOut, b.Status)
		assert.NotNil(t, b.CheckedOutAt)
	})

	t.Run("early check-out needs acknowledgement", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		checkInTestBooking(t, b)
		early := testCheckOutDate.AddDate(0, 0, -1)

		warning, err := b.CheckOut(early, false)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, BookingStatusCheckedIn, b.Status)

		warning, err = b.CheckOut(early, true)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, BookingStatusCheckedOut, b.Status)
	})

	t.Run("unpaid balance survives check-out", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		checkInTestBooking(t, b)

		_, err := b.CheckOut(testCheckOutDate, false)
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusUnpaid, b.PaymentStatus)
		assertDecimal(t, "14175", b.DueBalance)
	})
}

// ============================================
// Cancel / Refund Tests
// ============================================

func TestBooking_Cancel(t *testing.T) {
	t.Run("from confirmed", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		require.NoError(t, b.Cancel("plans changed"))
		assert.Equal(t, BookingStatusCancelled, b.Status)
		assert.Equal(t, "plans changed", b.CancelReason)
		assert.NotNil(t, b.CancelledAt)
	})

	t.Run("from checked-in with unsettled ledger", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		checkInTestBooking(t, b)

		require.NoError(t, b.Cancel("emergency"))
		assert.Equal(t, BookingStatusCancelled, b.Status)
	})

	t.Run("requires a reason", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		assertErrorCode(t, b.Cancel(""), shared.CodeValidationError)
	})

	t.Run("rejected from checked-out", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		checkInTestBooking(t, b)
		_, err := b.CheckOut(testCheckOutDate, false)
		require.NoError(t, err)

		assertErrorCode(t, b.Cancel("too late"), shared.CodeInvalidTransition)
	})

	t.Run("rejected when already cancelled", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		require.NoError(t, b.Cancel("first"))
		assertErrorCode(t, b.Cancel("second"), shared.CodeInvalidTransition)
	})
}

func TestBooking_Refund(t *testing.T) {
	t.Run("refunds a cancelled booking with payments", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(5000), PaymentMethodCash, "", "", uuid.New())
		require.NoError(t, err)
		require.NoError(t, b.Cancel("guest request"))

		require.NoError(t, b.Refund())
		assert.Equal(t, PaymentStatusRefunded, b.PaymentStatus)
		assert.NotNil(t, b.RefundedAt)
	})

	t.Run("rejected on active booking", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(5000), PaymentMethodCash, "", "", uuid.New())
		require.NoError(t, err)

		assertErrorCode(t, b.Refund(), shared.CodeInvalidTransition)
	})

	t.Run("rejected without payments", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		require.NoError(t, b.Cancel("guest request"))

		assertErrorCode(t, b.Refund(), shared.CodeValidationError)
	})

	t.Run("rejected twice", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(5000), PaymentMethodCash, "", "", uuid.New())
		require.NoError(t, err)
		require.NoError(t, b.Cancel("guest request"))
		require.NoError(t, b.Refund())

		assertErrorCode(t, b.Refund(), shared.CodeValidationError)
	})
}

// ============================================
// Charge Ledger Tests
// ============================================

func TestBooking_AddCharge(t *testing.T) {
	t.Run("adds charge and recomputes totals", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		charge, err := b.AddCharge("Mini bar", valueobject.NewMoneyBDTFromInt(1000), "", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "Mini bar", charge.Description)
		assert.Equal(t, 1, b.ChargeCount())

		// taxable base 13500 + 1000, tax 725
		assertDecimal(t, "15225", b.GrandTotal)
		assertDecimal(t, "15225", b.DueBalance)
		assert.Equal(t, BookingStatusConfirmed, b.Status)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		_, err := b.AddCharge("Nothing", valueobject.ZeroBDT(), "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)

		_, err = b.AddCharge("Credit", valueobject.NewMoneyBDTFromInt(-100), "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		_, err := b.AddCharge("", valueobject.NewMoneyBDTFromInt(100), "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejected on cancelled booking", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		require.NoError(t, b.Cancel("guest request"))

		_, err := b.AddCharge("Late fee", valueobject.NewMoneyBDTFromInt(100), "", uuid.New())
		assertErrorCode(t, err, shared.CodeInvalidTransition)
	})
}

func TestBooking_ReverseCharge(t *testing.T) {
	t.Run("offsets the original without mutating history", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		charge, err := b.AddCharge("Mini bar", valueobject.NewMoneyBDTFromInt(1000), "", uuid.New())
		require.NoError(t, err)
		assertDecimal(t, "15225", b.GrandTotal)

		reversal, err := b.ReverseCharge(charge.ID, "billed in error", uuid.New())
		require.NoError(t, err)
		assert.True(t, reversal.IsReversal())
		assertDecimal(t, "-1000", reversal.Amount)
		assert.Equal(t, 2, b.ChargeCount())
		assertDecimal(t, "14175", b.GrandTotal)
	})

	t.Run("rejects double reversal", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		charge, err := b.AddCharge("Mini bar", valueobject.NewMoneyBDTFromInt(1000), "", uuid.New())
		require.NoError(t, err)
		_, err = b.ReverseCharge(charge.ID, "", uuid.New())
		require.NoError(t, err)

		_, err = b.ReverseCharge(charge.ID, "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejects reversing a reversal", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		charge, err := b.AddCharge("Mini bar", valueobject.NewMoneyBDTFromInt(1000), "", uuid.New())
		require.NoError(t, err)
		reversal, err := b.ReverseCharge(charge.ID, "", uuid.New())
		require.NoError(t, err)

		_, err = b.ReverseCharge(reversal.ID, "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("unknown charge", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		_, err := b.ReverseCharge(uuid.New(), "", uuid.New())
		assertErrorCode(t, err, shared.CodeNotFound)
	})
}

// ============================================
// Payment Ledger Tests
// ============================================

func TestBooking_AddPayment(t *testing.T) {
	t.Run("partial then full payment", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(5000), PaymentMethodMobileWallet, "TXN-1", "", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPartial, b.PaymentStatus)
		assertDecimal(t, "5000", b.PaidAmount)
		assertDecimal(t, "9175", b.DueBalance)

		_, err = b.AddPayment(valueobject.NewMoneyBDTFromInt(9175), PaymentMethodCash, "", "", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
		assertDecimal(t, "14175", b.PaidAmount)
		assertDecimal(t, "0", b.DueBalance)
	})

	t.Run("overpayment is rejected outright", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(20000), PaymentMethodCard, "", "", uuid.New())
		assertErrorCode(t, err, shared.CodeOverpaymentRejected)

		// ledger and status untouched
		assert.Equal(t, 0, b.PaymentCount())
		assert.Equal(t, PaymentStatusUnpaid, b.PaymentStatus)
		assertDecimal(t, "14175", b.DueBalance)
	})

	t.Run("payment exceeding remaining due after partial is rejected", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(14175), PaymentMethodCash, "", "", uuid.New())
		require.NoError(t, err)

		_, err = b.AddPayment(valueobject.NewMoneyBDTFromInt(1), PaymentMethodCash, "", "", uuid.New())
		assertErrorCode(t, err, shared.CodeOverpaymentRejected)
	})

	t.Run("rejects non-positive amount and unknown method", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))

		_, err := b.AddPayment(valueobject.ZeroBDT(), PaymentMethodCash, "", "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)

		_, err = b.AddPayment(valueobject.NewMoneyBDTFromInt(100), PaymentMethod("CHEQUE"), "", "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("rejected on cancelled booking", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		require.NoError(t, b.Cancel("guest request"))

		_, err := b.AddPayment(valueobject.NewMoneyBDTFromInt(100), PaymentMethodCash, "", "", uuid.New())
		assertErrorCode(t, err, shared.CodeInvalidTransition)
	})

	t.Run("settle-up after check-out", func(t *testing.T) {
		b := createTestBooking(t, createTestRoom(t, "101", 5000))
		checkInTestBooking(t, b)
		_, err := b.CheckOut(testCheckOutDate, false)
		require.NoError(t, err)

		_, err = b.AddPayment(valueobject.NewMoneyBDTFromInt(14175), PaymentMethodBankTransfer, "TT-99", "", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
		assertDecimal(t, "0", b.DueBalance)
	})
}

// ============================================
// Room Change Tests
// ============================================

func TestBooking_ChangeRoom(t *testing.T) {
	t.Run("upgrade mid-stay", func(t *testing.T) {
		oldRoom := createTestRoom(t, "101", 5000)
		newRoom := createTestRoom(t, "305", 8000)
		b := createTestBooking(t, oldRoom)
		checkInTestBooking(t, b)

		// two nights remain as of 2026-03-11
		today := testCheckInDate.AddDate(0, 0, 1)
		record, err := b.ChangeRoom(oldRoom, newRoom,
			valueobject.MustPercentage(10), valueobject.MustPercentage(5),
			today, RoomChangeReasonUpgrade, "guest asked for suite view", uuid.New())
		require.NoError(t, err)

		assert.Equal(t, "101", record.FromRoomNumber)
		assert.Equal(t, "305", record.ToRoomNumber)
		assert.EqualValues(t, 2, record.NightsAffected)
		assertDecimal(t, "4620", record.PriceAdjustment)

		assert.Equal(t, newRoom.ID, b.RoomID)
		assert.Equal(t, "305", b.RoomNumber)
		assert.Equal(t, oldRoom.ID, b.OriginalRoomID)
		assert.Equal(t, 1, b.RoomChangeCount())

		// pre-tax delta 4400 enters the ledger; the invoice taxes it
		assert.Equal(t, 1, b.ChargeCount())
		assertDecimal(t, "4400", b.Charges[0].Amount)
		assertDecimal(t, "18795", b.GrandTotal)

		bd := b.ComputeInvoice()
		assertDecimal(t, "895", bd.TaxAmount) // 675 room + 220 on the delta
	})

	t.Run("downgrade credits the guest", func(t *testing.T) {
		oldRoom := createTestRoom(t, "101", 5000)
		newRoom := createTestRoom(t, "102", 3000)
		b := createTestBooking(t, oldRoom)
		checkInTestBooking(t, b)

		today := testCheckInDate.AddDate(0, 0, 1)
		record, err := b.ChangeRoom(oldRoom, newRoom,
			valueobject.MustPercentage(10), valueobject.MustPercentage(5),
			today, RoomChangeReasonDowngrade, "", uuid.New())
		require.NoError(t, err)

		// new rate after discount 2700, delta -2300 over 2 nights, VAT -230
		assertDecimal(t, "-4830", record.PriceAdjustment)
		assertDecimal(t, "-4600", b.Charges[0].Amount)
		assertDecimal(t, "9345", b.GrandTotal)
	})

	t.Run("zero remaining nights still records the move", func(t *testing.T) {
		oldRoom := createTestRoom(t, "101", 5000)
		newRoom := createTestRoom(t, "305", 8000)
		b := createTestBooking(t, oldRoom)
		checkInTestBooking(t, b)

		record, err := b.ChangeRoom(oldRoom, newRoom,
			valueobject.MustPercentage(10), valueobject.MustPercentage(5),
			testCheckOutDate, RoomChangeReasonMaintenance, "", uuid.New())
		require.NoError(t, err)

		assert.EqualValues(t, 0, record.NightsAffected)
		assertDecimal(t, "0", record.PriceAdjustment)
		assert.Equal(t, 1, b.RoomChangeCount())
		assert.Equal(t, 0, b.ChargeCount())
		assertDecimal(t, "14175", b.GrandTotal)
	})

	t.Run("no-op change rejected", func(t *testing.T) {
		room := createTestRoom(t, "101", 5000)
		b := createTestBooking(t, room)
		checkInTestBooking(t, b)

		_, err := b.ChangeRoom(room, room,
			valueobject.MustPercentage(10), valueobject.MustPercentage(5),
			testCheckInDate, RoomChangeReasonGuestRequest, "", uuid.New())
		assertErrorCode(t, err, shared.CodeNoOpRoomChange)
		assert.Equal(t, 0, b.RoomChangeCount())
	})

	t.Run("requires checked-in status", func(t *testing.T) {
		oldRoom := createTestRoom(t, "101", 5000)
		newRoom := createTestRoom(t, "305", 8000)
		b := createTestBooking(t, oldRoom)

		_, err := b.ChangeRoom(oldRoom, newRoom,
			valueobject.MustPercentage(10), valueobject.MustPercentage(5),
			testCheckInDate, RoomChangeReasonGuestRequest, "", uuid.New())
		assertErrorCode(t, err, shared.CodeInvalidTransition)
	})

	t.Run("current room must match assignment", func(t *testing.T) {
		oldRoom := createTestRoom(t, "101", 5000)
		wrongRoom := createTestRoom(t, "999", 5000)
		newRoom := createTestRoom(t, "305", 8000)
		b := createTestBooking(t, oldRoom)
		checkInTestBooking(t, b)

		_, err := b.ChangeRoom(wrongRoom, newRoom,
			valueobject.MustPercentage(10), valueobject.MustPercentage(5),
			testCheckInDate, RoomChangeReasonGuestRequest, "", uuid.New())
		assertErrorCode(t, err, shared.CodeValidationError)
	})

	t.Run("second change prices from the current room", func(t *testing.T) {
		first := createTestRoom(t, "101", 5000)
		second := createTestRoom(t, "305", 8000)
		third := createTestRoom(t, "410", 8000)
		b := createTestBooking(t, first)
		checkInTestBooking(t, b)

		today := testCheckInDate.AddDate(0, 0, 1)
		_, err := b.ChangeRoom(first, second,
			valueobject.ZeroPercent(), valueobject.MustPercentage(5),
			today, RoomChangeReasonUpgrade, "", uuid.New())
		require.NoError(t, err)

		// same rate, no discount: lateral move is financially neutral
		record, err := b.ChangeRoom(second, third,
			valueobject.ZeroPercent(), valueobject.MustPercentage(5),
			today, RoomChangeReasonNoise, "", uuid.New())
		require.NoError(t, err)
		assertDecimal(t, "0", record.PriceAdjustment)
		assert.Equal(t, 2, b.RoomChangeCount())
	})
}
