package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

func TestNormalizePermission(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"manageBookings", "manage_bookings"},
		{"deleteBooking", "delete_booking"},
		{"checkInGuests", "check_in_guests"},
		{"manage_bookings", "manage_bookings"}, // canonical passes through
		{"  managePayments  ", "manage_payments"},
		{"somethingUnknown", "somethingUnknown"}, // unknown left as-is
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePermission(tt.input))
		})
	}
}

func TestPrincipal_HasPermission(t *testing.T) {
	t.Run("exact membership", func(t *testing.T) {
		p := NewPrincipal(uuid.New(), "reception1", RoleCodeFrontDesk,
			[]string{PermViewBookings, PermCheckInGuests})

		assert.True(t, p.HasPermission(PermViewBookings))
		assert.True(t, p.HasPermission(PermCheckInGuests))
		assert.False(t, p.HasPermission(PermDeleteBooking))
	})

	t.Run("legacy aliases resolve on both sides", func(t *testing.T) {
		// permission set stored under old camelCase names
		p := NewPrincipal(uuid.New(), "reception1", RoleCodeFrontDesk,
			[]string{"manageBookings", "checkInGuests"})

		assert.True(t, p.HasPermission(PermManageBookings))
		assert.True(t, p.HasPermission("checkInGuests"))
		assert.False(t, p.HasPermission(PermManagePayments))
	})

	t.Run("unknown permissions default to deny", func(t *testing.T) {
		p := NewPrincipal(uuid.New(), "reception1", RoleCodeFrontDesk,
			[]string{PermViewBookings})

		assert.False(t, p.HasPermission("manage_spaceships"))
		assert.False(t, p.HasPermission(""))
	})

	t.Run("master admin bypasses everything", func(t *testing.T) {
		p := NewPrincipal(uuid.New(), "owner", RoleCodeMasterAdmin, nil)

		assert.True(t, p.IsMasterAdmin())
		assert.True(t, p.HasPermission(PermDeleteBooking))
		assert.True(t, p.HasPermission("manage_spaceships")) // even unknown codes
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("allows held permission", func(t *testing.T) {
		p := NewPrincipal(uuid.New(), "acct1", RoleCodeAccountant, []string{PermManagePayments})
		assert.NoError(t, Authorize(p, PermManagePayments))
	})

	t.Run("denies missing permission with typed error", func(t *testing.T) {
		p := NewPrincipal(uuid.New(), "acct1", RoleCodeAccountant, []string{PermManagePayments})

		err := Authorize(p, PermDeleteBooking)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, shared.CodePermissionDenied, de.Code)
	})

	t.Run("master admin is allowed without any permission set", func(t *testing.T) {
		p := NewPrincipal(uuid.New(), "owner", RoleCodeMasterAdmin, nil)
		assert.NoError(t, Authorize(p, PermDeleteBooking))
		assert.NoError(t, Authorize(p, PermProcessRefunds))
	})
}
