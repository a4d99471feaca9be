package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

var hundred = decimal.NewFromInt(100)

// nightsBetween returns the whole number of nights between two instants,
// rounding any fractional day up. Negative spans count as zero.
func nightsBetween(from, to time.Time) int64 {
	span := to.Sub(from)
	if span <= 0 {
		return 0
	}
	nights := int64(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}

// RemainingNights returns the nights left in the stay as of today,
// never negative. Used as the proration anchor for room changes.
func RemainingNights(checkOutDate, today time.Time) int64 {
	return nightsBetween(today, checkOutDate)
}

// RoomChangeQuote is the financial delta of switching rooms mid-stay.
// Each intermediate step is carried so the breakdown can be shown to
// staff before they confirm the change.
type RoomChangeQuote struct {
	OldRate              decimal.Decimal `json:"old_rate"`
	NewRate              decimal.Decimal `json:"new_rate"`
	RemainingNights      int64           `json:"remaining_nights"`
	DiscountPercentage   decimal.Decimal `json:"discount_percentage"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	DiscountOnNewRate    decimal.Decimal `json:"discount_on_new_rate"`
	NewRateAfterDiscount decimal.Decimal `json:"new_rate_after_discount"`
	PerNightDelta        decimal.Decimal `json:"per_night_delta"` // positive = upgrade charge
	SubtotalDelta        decimal.Decimal `json:"subtotal_delta"`
	VATOnDelta           decimal.Decimal `json:"vat_on_delta"`
	TotalAdjustment      decimal.Decimal `json:"total_adjustment"`
}

// ComputeRoomChangeQuote prorates a mid-stay room change over the nights
// remaining as of today. The step order is a contract: discount applies
// to the new rate before the delta is taken, and VAT applies to the
// signed subtotal delta, so a downgrade produces a negative VAT credit
// symmetrically with an upgrade's VAT charge.
func ComputeRoomChangeQuote(oldRate, newRate decimal.Decimal, discount, taxRate valueobject.Percentage, checkOutDate, today time.Time) RoomChangeQuote {
	remaining := RemainingNights(checkOutDate, today)

	discountOnNewRate := newRate.Mul(discount.Decimal()).Div(hundred)
	newRateAfterDiscount := newRate.Sub(discountOnNewRate)
	perNightDelta := newRateAfterDiscount.Sub(oldRate)
	subtotalDelta := perNightDelta.Mul(decimal.NewFromInt(remaining))
	vatOnDelta := subtotalDelta.Mul(taxRate.Decimal()).Div(hundred)
	totalAdjustment := subtotalDelta.Add(vatOnDelta)

	return RoomChangeQuote{
		OldRate:              oldRate,
		NewRate:              newRate,
		RemainingNights:      remaining,
		DiscountPercentage:   discount.Decimal(),
		TaxRate:              taxRate.Decimal(),
		DiscountOnNewRate:    discountOnNewRate,
		NewRateAfterDiscount: newRateAfterDiscount,
		PerNightDelta:        perNightDelta,
		SubtotalDelta:        subtotalDelta,
		VATOnDelta:           vatOnDelta,
		TotalAdjustment:      totalAdjustment,
	}
}

// GetTotalAdjustmentMoney returns the adjustment as a Money value object
func (q RoomChangeQuote) GetTotalAdjustmentMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(q.TotalAdjustment)
}

// IsUpgrade returns true when the change costs the guest money
func (q RoomChangeQuote) IsUpgrade() bool {
	return q.TotalAdjustment.IsPositive()
}

// IsDowngrade returns true when the change credits the guest
func (q RoomChangeQuote) IsDowngrade() bool {
	return q.TotalAdjustment.IsNegative()
}
