package booking

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

// PaymentMethod enumerates how a payment was received
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodMobileWallet PaymentMethod = "MOBILE_WALLET" // bKash/Nagad/Rocket
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodMobileWallet:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Charge is an append-only ledger entry for an amount billed to the
// booking. Charges are never mutated in place; corrections are modeled as
// offsetting entries so the sum-based totals stay auditable. Negative
// amounts occur only on room-change credits and reversals.
type Charge struct {
	ID               uuid.UUID       `json:"id"`
	BookingID        uuid.UUID       `json:"booking_id"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Notes            string          `json:"notes,omitempty"`
	ReversesChargeID *uuid.UUID      `json:"reverses_charge_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CreatedBy        uuid.UUID       `json:"created_by"`
}

// GetAmountMoney returns the charge amount as a Money value object
func (c *Charge) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(c.Amount)
}

// IsReversal returns true if this charge offsets an earlier one
func (c *Charge) IsReversal() bool {
	return c.ReversesChargeID != nil
}

// newCharge constructs a ledger charge entry
func newCharge(bookingID uuid.UUID, description string, amount decimal.Decimal, notes string, createdBy uuid.UUID) Charge {
	return Charge{
		ID:          uuid.New(),
		BookingID:   bookingID,
		Description: description,
		Amount:      amount,
		Notes:       notes,
		CreatedAt:   time.Now(),
		CreatedBy:   createdBy,
	}
}

// Charges is a slice of Charge that implements GORM Scanner/Valuer for JSONB storage
type Charges []Charge

// Value implements driver.Valuer interface for GORM to store as JSONB
func (c Charges) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (c *Charges) Scan(value interface{}) error {
	if value == nil {
		*c = Charges{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Charges: unsupported type")
	}

	if len(bytes) == 0 {
		*c = Charges{}
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// Total returns the sum of all charge amounts
func (c Charges) Total() decimal.Decimal {
	total := decimal.Zero
	for _, charge := range c {
		total = total.Add(charge.Amount)
	}
	return total
}

// Payment is an append-only ledger entry for money received against the
// booking's grand total.
type Payment struct {
	ID          uuid.UUID       `json:"id"`
	BookingID   uuid.UUID       `json:"booking_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Reference   string          `json:"reference,omitempty"` // external transaction id
	Notes       string          `json:"notes,omitempty"`
	ProcessedAt time.Time       `json:"processed_at"`
	ReceivedBy  uuid.UUID       `json:"received_by"`
}

// GetAmountMoney returns the payment amount as a Money value object
func (p *Payment) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(p.Amount)
}

// newPayment constructs a ledger payment entry
func newPayment(bookingID uuid.UUID, amount decimal.Decimal, method PaymentMethod, reference, notes string, receivedBy uuid.UUID) Payment {
	return Payment{
		ID:          uuid.New(),
		BookingID:   bookingID,
		Amount:      amount,
		Method:      method,
		Reference:   reference,
		Notes:       notes,
		ProcessedAt: time.Now(),
		ReceivedBy:  receivedBy,
	}
}

// Payments is a slice of Payment that implements GORM Scanner/Valuer for JSONB storage
type Payments []Payment

// Value implements driver.Valuer interface for GORM to store as JSONB
func (p Payments) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (p *Payments) Scan(value interface{}) error {
	if value == nil {
		*p = Payments{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Payments: unsupported type")
	}

	if len(bytes) == 0 {
		*p = Payments{}
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// Total returns the sum of all payment amounts
func (p Payments) Total() decimal.Decimal {
	total := decimal.Zero
	for _, payment := range p {
		total = total.Add(payment.Amount)
	}
	return total
}
