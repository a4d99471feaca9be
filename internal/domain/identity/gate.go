package identity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// Principal is the resolved caller identity handed to the authorization
// gate: the role code plus the flattened permission set of all the
// caller's roles. Permission codes are normalized at construction so
// membership checks never see legacy aliases.
type Principal struct {
	UserID      uuid.UUID
	Username    string
	RoleCode    string
	permissions map[string]struct{}
}

// NewPrincipal builds a Principal from a role code and permission list.
// Legacy camelCase permission names are translated to canonical form.
func NewPrincipal(userID uuid.UUID, username, roleCode string, permissions []string) Principal {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		set[NormalizePermission(p)] = struct{}{}
	}
	return Principal{
		UserID:      userID,
		Username:    username,
		RoleCode:    roleCode,
		permissions: set,
	}
}

// IsMasterAdmin returns true if the principal holds the super-role
func (p Principal) IsMasterAdmin() bool {
	return p.RoleCode == RoleCodeMasterAdmin
}

// HasPermission checks exact membership of a canonical permission code.
// The MasterAdmin bypass is evaluated first, before any set lookup.
func (p Principal) HasPermission(code string) bool {
	if p.IsMasterAdmin() {
		return true
	}
	_, ok := p.permissions[NormalizePermission(code)]
	return ok
}

// Permissions returns the canonical permission codes the principal holds
func (p Principal) Permissions() []string {
	codes := make([]string, 0, len(p.permissions))
	for code := range p.permissions {
		codes = append(codes, code)
	}
	return codes
}

// Authorize gates an operation on a required permission. Unknown
// permissions are not in any principal's set, so they deny by default.
func Authorize(p Principal, required string) error {
	if p.HasPermission(required) {
		return nil
	}
	return shared.NewDomainError(shared.CodePermissionDenied,
		fmt.Sprintf("Missing permission %q", NormalizePermission(required)))
}
