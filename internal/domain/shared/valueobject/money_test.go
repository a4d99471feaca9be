package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), BDT)
		require.NoError(t, err)
		assert.Equal(t, BDT, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", BDT)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", BDT)
		assert.Error(t, err)
	})
}

func TestNewMoneyBDT(t *testing.T) {
	m := NewMoneyBDT(decimal.NewFromFloat(50.00))
	assert.Equal(t, BDT, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))

	fromInt := NewMoneyBDTFromInt(5000)
	assert.Equal(t, int64(5000), fromInt.Amount().IntPart())

	fromFloat := NewMoneyBDTFromFloat(75.5)
	assert.Equal(t, 75.5, fromFloat.InexactFloat64())
}

func TestZeroBDT(t *testing.T) {
	m := ZeroBDT()
	assert.True(t, m.IsZero())
	assert.Equal(t, BDT, m.Currency())
}

func TestMoneySigns(t *testing.T) {
	positive := NewMoneyBDTFromFloat(100)
	negative := NewMoneyBDTFromFloat(-100)
	zero := ZeroBDT()

	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())
	assert.True(t, negative.IsNegative())
	assert.False(t, negative.IsPositive())
	assert.True(t, zero.IsZero())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds matching currencies", func(t *testing.T) {
		a := NewMoneyBDTFromFloat(100.25)
		b := NewMoneyBDTFromFloat(50.75)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(151.00)))
	})

	t.Run("rejects mismatched currencies", func(t *testing.T) {
		a := NewMoneyBDTFromFloat(100)
		b, _ := NewMoney(decimal.NewFromInt(100), USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("MustAdd panics on mismatch", func(t *testing.T) {
		a := NewMoneyBDTFromFloat(100)
		b, _ := NewMoney(decimal.NewFromInt(100), USD)
		assert.Panics(t, func() { a.MustAdd(b) })
	})
}

func TestMoneySubtract(t *testing.T) {
	a := NewMoneyBDTFromFloat(100)
	b := NewMoneyBDTFromFloat(150)
	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(-50)))
}

func TestMoneyMultiplyAndNegate(t *testing.T) {
	m := NewMoneyBDTFromFloat(2200)
	doubled := m.MultiplyByInt(2)
	assert.True(t, doubled.Amount().Equal(decimal.NewFromInt(4400)))

	neg := m.Negate()
	assert.True(t, neg.IsNegative())
	assert.True(t, neg.Abs().Equals(m))
}

func TestMoneyComparisons(t *testing.T) {
	small := NewMoneyBDTFromFloat(10)
	big := NewMoneyBDTFromFloat(20)

	less, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, greater)

	gte, err := big.GreaterThanOrEqual(big)
	require.NoError(t, err)
	assert.True(t, gte)

	other, _ := NewMoney(decimal.NewFromInt(10), EUR)
	_, err = small.LessThan(other)
	assert.Error(t, err)
}

func TestMoneyPercentageHelpers(t *testing.T) {
	// 15000 at 10% discount then the discounted amount itself
	base := NewMoneyBDTFromInt(15000)

	discount := base.CalculatePercentage(decimal.NewFromInt(10))
	assert.True(t, discount.Amount().Equal(decimal.NewFromInt(1500)))

	after := base.ApplyDiscount(decimal.NewFromInt(10))
	assert.True(t, after.Amount().Equal(decimal.NewFromInt(13500)))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyBDTFromFloat(14175)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string amount with default currency", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("4620.00"))
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(4620)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}

func TestPercentage(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := NewPercentageFromFloat(12.5)
		require.NoError(t, err)
		assert.Equal(t, "12.5%", p.String())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := NewPercentageFromFloat(-1)
		assert.Error(t, err)
	})

	t.Run("rejects over 100", func(t *testing.T) {
		_, err := NewPercentageFromFloat(100.01)
		assert.Error(t, err)
	})

	t.Run("Of computes percentage of money", func(t *testing.T) {
		p := MustPercentage(5)
		tax := p.Of(NewMoneyBDTFromInt(13500))
		assert.True(t, tax.Amount().Equal(decimal.NewFromInt(675)))
	})

	t.Run("zero percent of anything is zero", func(t *testing.T) {
		assert.True(t, ZeroPercent().Of(NewMoneyBDTFromInt(99999)).IsZero())
	})

	t.Run("MustPercentage panics out of range", func(t *testing.T) {
		assert.Panics(t, func() { MustPercentage(101) })
	})
}
