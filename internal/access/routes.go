package access

// Client-side navigation surface.
const (
	PathHome             = "/"
	PathLogin            = "/login"
	PathLogout           = "/logout"
	PathContact          = "/contact"
	PathDashboard        = "/dashboard"
	PathAdminDashboard   = "/dashboard/admin"
	PathManagerDashboard = "/dashboard/manager"
	PathCashierDashboard = "/dashboard/cashier"
	PathAdminUsers       = "/admin/users"
	PathProducts         = "/products"
	PathCustomers        = "/customers"
	PathOrders           = "/orders"
	PathNewOrder         = "/orders/new"
	PathSuppliers        = "/suppliers"
	PathInventory        = "/inventory"
	PathReports          = "/reports"
	PathUnauthorized     = "/unauthorized"
)

// Route identifies a guarded screen.
type Route int

const (
	RouteDashboard Route = iota
	RouteAdminDashboard
	RouteManagerDashboard
	RouteCashierDashboard
	RouteAdminUsers
	RouteProducts
	RouteCustomers
	RouteOrders
	RouteNewOrder
	RouteSuppliers
	RouteInventory
	RouteReports
)

// Routes lists every guarded route.
var Routes = []Route{
	RouteDashboard,
	RouteAdminDashboard,
	RouteManagerDashboard,
	RouteCashierDashboard,
	RouteAdminUsers,
	RouteProducts,
	RouteCustomers,
	RouteOrders,
	RouteNewOrder,
	RouteSuppliers,
	RouteInventory,
	RouteReports,
}

// Path returns the base path of the route.
func (r Route) Path() string {
	switch r {
	case RouteDashboard:
		return PathDashboard
	case RouteAdminDashboard:
		return PathAdminDashboard
	case RouteManagerDashboard:
		return PathManagerDashboard
	case RouteCashierDashboard:
		return PathCashierDashboard
	case RouteAdminUsers:
		return PathAdminUsers
	case RouteProducts:
		return PathProducts
	case RouteCustomers:
		return PathCustomers
	case RouteOrders:
		return PathOrders
	case RouteNewOrder:
		return PathNewOrder
	case RouteSuppliers:
		return PathSuppliers
	case RouteInventory:
		return PathInventory
	case RouteReports:
		return PathReports
	default:
		return ""
	}
}

// Allowed reports whether role may open route. Anonymous users are handled
// by the guard before this is consulted, so RoleNone only reaches the generic
// dashboard.
func Allowed(route Route, role Role) bool {
	switch route {
	case RouteDashboard:
		return true
	case RouteAdminDashboard, RouteAdminUsers:
		return role == RoleAdmin
	case RouteManagerDashboard:
		return role == RoleInventoryManager
	case RouteCashierDashboard:
		return role == RoleCashier
	case RouteProducts, RouteSuppliers, RouteInventory, RouteReports:
		return role == RoleAdmin || role == RoleInventoryManager
	case RouteCustomers:
		return role == RoleAdmin || role == RoleInventoryManager || role == RoleCashier
	case RouteOrders, RouteNewOrder:
		return role == RoleAdmin || role == RoleCashier
	default:
		return false
	}
}

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var navigation = []struct {
	route Route
	item  NavItem
}{
	{RouteDashboard, NavItem{Path: PathDashboard, Label: "Dashboard", Icon: "layout-dashboard"}},
	{RouteProducts, NavItem{Path: PathProducts, Label: "Products", Icon: "package"}},
	{RouteCustomers, NavItem{Path: PathCustomers, Label: "Customers", Icon: "users"}},
	{RouteOrders, NavItem{Path: PathOrders, Label: "Orders", Icon: "shopping-cart"}},
	{RouteSuppliers, NavItem{Path: PathSuppliers, Label: "Suppliers", Icon: "truck"}},
	{RouteInventory, NavItem{Path: PathInventory, Label: "Inventory", Icon: "clipboard-list"}},
	{RouteReports, NavItem{Path: PathReports, Label: "Reports", Icon: "bar-chart-3"}},
	{RouteAdminUsers, NavItem{Path: PathAdminUsers, Label: "Users", Icon: "user-cog"}},
}

// NavItems returns the navigation entries role is allowed to open.
func NavItems(role Role) []NavItem {
	items := make([]NavItem, 0, len(navigation))
	for _, entry := range navigation {
		if Allowed(entry.route, role) {
			items = append(items, entry.item)
		}
	}
	return items
}
