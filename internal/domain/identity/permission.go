package identity

import (
	"regexp"
	"strings"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// Permission is a named capability gating one operation, e.g.
// "manage_bookings". It is a value object; roles hold sets of them.
type Permission struct {
	Code        string // snake_case canonical form
	Description string
}

var permissionCodeRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NewPermission creates a Permission from a canonical snake_case code
func NewPermission(code string) (*Permission, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission code cannot exceed 50 characters")
	}
	if !permissionCodeRegex.MatchString(code) {
		return nil, shared.NewDomainError("INVALID_PERMISSION_CODE",
			"Permission code must be snake_case starting with a letter")
	}
	return &Permission{Code: code}, nil
}

// NewPermissionWithDescription creates a Permission with a description
func NewPermissionWithDescription(code, description string) (*Permission, error) {
	perm, err := NewPermission(code)
	if err != nil {
		return nil, err
	}
	perm.Description = description
	return perm, nil
}

// Equals checks if two permissions are equal
func (p Permission) Equals(other Permission) bool {
	return p.Code == other.Code
}

// IsEmpty returns true if the permission is empty
func (p Permission) IsEmpty() bool {
	return p.Code == ""
}

// Canonical permission codes
const (
	PermViewBookings    = "view_bookings"
	PermManageBookings  = "manage_bookings"
	PermConfirmBookings = "confirm_bookings"
	PermCheckInGuests   = "check_in_guests"
	PermCheckOutGuests  = "check_out_guests"
	PermCancelBookings  = "cancel_bookings"
	PermDeleteBooking   = "delete_booking"
	PermChangeRooms     = "change_rooms"
	PermManageCharges   = "manage_charges"
	PermManagePayments  = "manage_payments"
	PermProcessRefunds  = "process_refunds"
	PermGenerateInvoice = "generate_invoices"
	PermViewRooms       = "view_rooms"
	PermManageRooms     = "manage_rooms"
	PermViewReports     = "view_reports"
	PermManageUsers     = "manage_users"
	PermManageRoles     = "manage_roles"
)

// AllPermissions lists every canonical permission code, used to seed the
// administrator roles and to validate grants.
var AllPermissions = []string{
	PermViewBookings,
	PermManageBookings,
	PermConfirmBookings,
	PermCheckInGuests,
	PermCheckOutGuests,
	PermCancelBookings,
	PermDeleteBooking,
	PermChangeRooms,
	PermManageCharges,
	PermManagePayments,
	PermProcessRefunds,
	PermGenerateInvoice,
	PermViewRooms,
	PermManageRooms,
	PermViewReports,
	PermManageUsers,
	PermManageRoles,
}

// legacyPermissionAliases maps the camelCase permission names used by
// older clients and stored role rows to their canonical snake_case
// forms. Consulted once at the authorization boundary; nothing else in
// the system sees the legacy names.
var legacyPermissionAliases = map[string]string{
	"viewBookings":     PermViewBookings,
	"manageBookings":   PermManageBookings,
	"confirmBookings":  PermConfirmBookings,
	"checkInGuests":    PermCheckInGuests,
	"checkOutGuests":   PermCheckOutGuests,
	"cancelBookings":   PermCancelBookings,
	"deleteBooking":    PermDeleteBooking,
	"changeRooms":      PermChangeRooms,
	"manageCharges":    PermManageCharges,
	"managePayments":   PermManagePayments,
	"processRefunds":   PermProcessRefunds,
	"generateInvoices": PermGenerateInvoice,
	"viewRooms":        PermViewRooms,
	"manageRooms":      PermManageRooms,
	"viewReports":      PermViewReports,
	"manageUsers":      PermManageUsers,
	"manageRoles":      PermManageRoles,
}

// NormalizePermission resolves a permission name to its canonical
// snake_case code, translating legacy camelCase aliases. Unknown names
// pass through unchanged: membership checks against canonical sets will
// simply fail them, which keeps the default-deny behavior.
func NormalizePermission(code string) string {
	code = strings.TrimSpace(code)
	if canonical, ok := legacyPermissionAliases[code]; ok {
		return canonical
	}
	return code
}
