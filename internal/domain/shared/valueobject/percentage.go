package valueobject

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Percentage is a value object for rates expressed as 0-100
// (discount percentages, tax/VAT rates). It is immutable.
type Percentage struct {
	value decimal.Decimal
}

// NewPercentage creates a Percentage, enforcing the 0-100 range
func NewPercentage(value decimal.Decimal) (Percentage, error) {
	if value.IsNegative() {
		return Percentage{}, fmt.Errorf("percentage cannot be negative: %s", value)
	}
	if value.GreaterThan(decimal.NewFromInt(100)) {
		return Percentage{}, fmt.Errorf("percentage cannot exceed 100: %s", value)
	}
	return Percentage{value: value}, nil
}

// NewPercentageFromFloat creates a Percentage from a float64
func NewPercentageFromFloat(value float64) (Percentage, error) {
	return NewPercentage(decimal.NewFromFloat(value))
}

// MustPercentage creates a Percentage, panicking on out-of-range values.
// Intended for constants and tests.
func MustPercentage(value float64) Percentage {
	p, err := NewPercentageFromFloat(value)
	if err != nil {
		panic(err)
	}
	return p
}

// ZeroPercent returns a zero percentage
func ZeroPercent() Percentage {
	return Percentage{value: decimal.Zero}
}

// Value returns the underlying decimal (0-100)
func (p Percentage) Decimal() decimal.Decimal {
	return p.value
}

// IsZero returns true if the percentage is zero
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// Of returns the percentage of the given money amount
func (p Percentage) Of(m Money) Money {
	return m.CalculatePercentage(p.value)
}

// Equals returns true if both percentages are equal
func (p Percentage) Equals(other Percentage) bool {
	return p.value.Equal(other.value)
}

// String returns the percentage as a string, e.g. "12.5%"
func (p Percentage) String() string {
	return p.value.String() + "%"
}

// MarshalJSON implements json.Marshaler
func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(p.value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Percentage) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid percentage: %w", err)
	}
	parsed, err := NewPercentage(d)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer for database storage
func (p Percentage) Value() (driver.Value, error) {
	return p.value.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (p *Percentage) Scan(value any) error {
	if value == nil {
		p.value = decimal.Zero
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	case int64:
		p.value = decimal.NewFromInt(v)
		return nil
	case float64:
		p.value = decimal.NewFromFloat(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Percentage", value)
	}

	d, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid percentage value: %w", err)
	}
	p.value = d
	return nil
}
