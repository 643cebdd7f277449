// Package access holds the role model and the route allow-list that gates
// every dashboard screen.
package access

import "strings"

// Role is the closed set of staff roles. RoleNone covers anonymous users and
// any role string the dashboard does not know.
type Role int

const (
	RoleNone Role = iota
	RoleAdmin
	RoleInventoryManager
	RoleCashier
)

// Roles lists every known role, RoleNone excluded.
var Roles = []Role{RoleAdmin, RoleInventoryManager, RoleCashier}

// String returns the wire name used by the inventory API.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleInventoryManager:
		return "InventoryManager"
	case RoleCashier:
		return "Cashier"
	default:
		return ""
	}
}

// ParseRole maps a wire name to a Role, case-insensitively.
func ParseRole(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin":
		return RoleAdmin
	case "inventorymanager":
		return RoleInventoryManager
	case "cashier":
		return RoleCashier
	default:
		return RoleNone
	}
}

// PrimaryRole picks the most privileged known role from a role list.
func PrimaryRole(names []string) Role {
	best := RoleNone
	for _, name := range names {
		r := ParseRole(name)
		if r != RoleNone && (best == RoleNone || r < best) {
			best = r
		}
	}
	return best
}

// IsManagedRole reports whether admins may assign r to another account.
func IsManagedRole(r Role) bool {
	return r == RoleInventoryManager || r == RoleCashier
}

// DefaultDashboardPath is the landing route after login.
func DefaultDashboardPath(r Role) string {
	switch r {
	case RoleAdmin:
		return PathAdminDashboard
	case RoleInventoryManager:
		return PathManagerDashboard
	case RoleCashier:
		return PathCashierDashboard
	default:
		return PathDashboard
	}
}
