package booking

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// GuestInfo holds the identity and contact details of the staying guest.
// It is a value object within the Booking aggregate, stored as JSONB.
type GuestInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	IDNumber string `json:"id_number,omitempty"` // NID or passport number
}

// NewGuestInfo creates GuestInfo, enforcing the required fields
func NewGuestInfo(name, email, phone, address, idNumber string) (GuestInfo, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return GuestInfo{}, shared.NewDomainError(shared.CodeValidationError, "Guest name is required")
	}
	if len(name) > 200 {
		return GuestInfo{}, shared.NewDomainError(shared.CodeValidationError, "Guest name cannot exceed 200 characters")
	}
	if phone == "" {
		return GuestInfo{}, shared.NewDomainError(shared.CodeValidationError, "Guest phone is required")
	}
	return GuestInfo{
		Name:     name,
		Email:    strings.TrimSpace(email),
		Phone:    phone,
		Address:  strings.TrimSpace(address),
		IDNumber: strings.TrimSpace(idNumber),
	}, nil
}

// IsEmpty returns true if no guest details are present
func (g GuestInfo) IsEmpty() bool {
	return g.Name == "" && g.Phone == ""
}

// Value implements driver.Valuer for GORM to store as JSONB
func (g GuestInfo) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (g *GuestInfo) Scan(value interface{}) error {
	if value == nil {
		*g = GuestInfo{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan GuestInfo: unsupported type")
	}

	if len(bytes) == 0 {
		*g = GuestInfo{}
		return nil
	}

	return json.Unmarshal(bytes, g)
}
