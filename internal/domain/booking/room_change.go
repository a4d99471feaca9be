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

// RoomChangeReason enumerates why a guest was moved mid-stay
type RoomChangeReason string

const (
	RoomChangeReasonGuestRequest RoomChangeReason = "GUEST_REQUEST"
	RoomChangeReasonUpgrade      RoomChangeReason = "UPGRADE"
	RoomChangeReasonDowngrade    RoomChangeReason = "DOWNGRADE"
	RoomChangeReasonMaintenance  RoomChangeReason = "MAINTENANCE"
	RoomChangeReasonNoise        RoomChangeReason = "NOISE_COMPLAINT"
	RoomChangeReasonOther        RoomChangeReason = "OTHER"
)

// IsValid checks if the reason is a known reason
func (r RoomChangeReason) IsValid() bool {
	switch r {
	case RoomChangeReasonGuestRequest, RoomChangeReasonUpgrade, RoomChangeReasonDowngrade,
		RoomChangeReasonMaintenance, RoomChangeReasonNoise, RoomChangeReasonOther:
		return true
	}
	return false
}

// String returns the string representation of RoomChangeReason
func (r RoomChangeReason) String() string {
	return string(r)
}

// RoomChangeRecord is an audit entry for a mid-stay room change. Records
// are appended in chronological order; the sequence traces the path from
// the originally assigned room to the current one.
type RoomChangeRecord struct {
	ID              uuid.UUID        `json:"id"`
	FromRoomNumber  string           `json:"from_room_number"`
	ToRoomNumber    string           `json:"to_room_number"`
	Date            time.Time        `json:"date"`
	Reason          RoomChangeReason `json:"reason"`
	Notes           string           `json:"notes,omitempty"`
	NightsAffected  int64            `json:"nights_affected"`
	PriceAdjustment decimal.Decimal  `json:"price_adjustment"` // signed; negative for downgrades
	ChangedBy       uuid.UUID        `json:"changed_by"`
}

// GetPriceAdjustmentMoney returns the adjustment as a Money value object
func (r *RoomChangeRecord) GetPriceAdjustmentMoney() valueobject.Money {
	return valueobject.NewMoneyBDT(r.PriceAdjustment)
}

// RoomChangeRecords is a slice of RoomChangeRecord with GORM JSONB support
type RoomChangeRecords []RoomChangeRecord

// Value implements driver.Valuer interface for GORM to store as JSONB
func (r RoomChangeRecords) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (r *RoomChangeRecords) Scan(value interface{}) error {
	if value == nil {
		*r = RoomChangeRecords{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan RoomChangeRecords: unsupported type")
	}

	if len(bytes) == 0 {
		*r = RoomChangeRecords{}
		return nil
	}

	return json.Unmarshal(bytes, r)
}
