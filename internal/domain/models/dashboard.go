package models

import "github.com/shopspring/decimal"

// DashboardOrderSummary is a compact order row on the admin dashboard.
type DashboardOrderSummary struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	OrderedAtUTC Timestamp       `json:"orderedAtUtc"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// AdminDashboardSummary is the aggregate served by /admin/dashboard.
type AdminDashboardSummary struct {
	TotalProducts        int                     `json:"totalProducts"`
	TotalCustomers       int                     `json:"totalCustomers"`
	TotalSuppliers       int                     `json:"totalSuppliers"`
	TotalOrders          int                     `json:"totalOrders"`
	TotalInventoryValue  decimal.Decimal         `json:"totalInventoryValue"`
	RecentOrders         []DashboardOrderSummary `json:"recentOrders"`
	RecentUserActivities []UserActivity          `json:"recentUserActivities"`
	LowStockProducts     []Product               `json:"lowStockProducts"`
}
