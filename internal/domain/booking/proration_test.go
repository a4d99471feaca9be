package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

func mustPct(t *testing.T, value float64) valueobject.Percentage {
	t.Helper()
	return valueobject.MustPercentage(value)
}

func TestNightsBetween(t *testing.T) {
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int64
	}{
		{"three whole nights", base, base.AddDate(0, 0, 3), 3},
		{"one night", base, base.AddDate(0, 0, 1), 1},
		{"same instant", base, base, 0},
		{"negative span clamps to zero", base.AddDate(0, 0, 2), base, 0},
		{"partial day rounds up", base, base.Add(36 * time.Hour), 2},
		{"just over a day rounds up", base, base.Add(25 * time.Hour), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nightsBetween(tt.from, tt.to))
		})
	}
}

func TestComputeRoomChangeQuote_Upgrade(t *testing.T) {
	checkOut := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	// old 5000, new 8000, 10% discount, 5% VAT, 2 nights remaining
	q := ComputeRoomChangeQuote(decimal.NewFromInt(5000), decimal.NewFromInt(8000),
		mustPct(t, 10), mustPct(t, 5), checkOut, today)

	assert.EqualValues(t, 2, q.RemainingNights)
	assertDecimal(t, "800", q.DiscountOnNewRate)
	assertDecimal(t, "7200", q.NewRateAfterDiscount)
	assertDecimal(t, "2200", q.PerNightDelta)
	assertDecimal(t, "4400", q.SubtotalDelta)
	assertDecimal(t, "220", q.VATOnDelta)
	assertDecimal(t, "4620", q.TotalAdjustment)
	assert.True(t, q.IsUpgrade())
	assert.False(t, q.IsDowngrade())
}

func TestComputeRoomChangeQuote_Downgrade(t *testing.T) {
	checkOut := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	q := ComputeRoomChangeQuote(decimal.NewFromInt(8000), decimal.NewFromInt(5000),
		mustPct(t, 0), mustPct(t, 5), checkOut, today)

	// VAT on a negative delta is a negative credit, mirroring the upgrade case
	assertDecimal(t, "-3000", q.PerNightDelta)
	assertDecimal(t, "-6000", q.SubtotalDelta)
	assertDecimal(t, "-300", q.VATOnDelta)
	assertDecimal(t, "-6300", q.TotalAdjustment)
	assert.True(t, q.IsDowngrade())
}

func TestComputeRoomChangeQuote_CheckOutDay(t *testing.T) {
	checkOut := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	q := ComputeRoomChangeQuote(decimal.NewFromInt(5000), decimal.NewFromInt(8000),
		mustPct(t, 10), mustPct(t, 5), checkOut, checkOut)

	assert.EqualValues(t, 0, q.RemainingNights)
	assertDecimal(t, "0", q.SubtotalDelta)
	assertDecimal(t, "0", q.TotalAdjustment)
	assert.False(t, q.IsUpgrade())
	assert.False(t, q.IsDowngrade())
}

func TestComputeRoomChangeQuote_EqualRatesWithDiscount(t *testing.T) {
	checkOut := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	// same list rate but the discount makes the new room cheaper
	q := ComputeRoomChangeQuote(decimal.NewFromInt(5000), decimal.NewFromInt(5000),
		mustPct(t, 10), mustPct(t, 5), checkOut, today)

	assertDecimal(t, "-500", q.PerNightDelta)
	assertDecimal(t, "-1050", q.TotalAdjustment)
	assert.True(t, q.IsDowngrade())
}
