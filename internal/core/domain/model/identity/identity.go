// Package identity describes a verified caller: who they are and which
// coarse role they hold.
package identity

import (
	"fmt"
	"strings"

	"printorders/internal/pkg/errs"
)

// Role is the coarse authorization category of a caller.
type Role string

const (
	Admin  Role = "admin"
	Vendor Role = "vendor"
)

// ParseRole accepts "admin" or "vendor" in any letter case.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Admin):
		return Admin, nil
	case string(Vendor):
		return Vendor, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
}

func (r Role) String() string {
	return string(r)
}

// Identity is the result of a successful authentication. UID is the subject
// of the verified credential and doubles as the vendor id for vendor callers.
type Identity struct {
	UID   string
	Email string
	Name  string
	Role  Role
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == Admin
}

// IsVendor reports whether the identity holds the vendor role.
func (i Identity) IsVendor() bool {
	return i.Role == Vendor
}
