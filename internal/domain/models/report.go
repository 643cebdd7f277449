package models

import (
	"encoding/json"
	"time"
)

// InventoryReportFilter narrows the inventory report. The time window is required.
type InventoryReportFilter struct {
	FromUTC    string `json:"fromUtc" validate:"required"`
	ToUTC      string `json:"toUtc" validate:"required"`
	ProductID  string `json:"productId,omitempty"`
	SupplierID string `json:"supplierId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
}

// InventoryReport is the server-defined report document, passed through as is.
type InventoryReport = json.RawMessage

// LowStockItem is a product at or below its reorder level at sweep time.
type LowStockItem struct {
	ProductID     string `bson:"product_id" json:"productId"`
	Name          string `bson:"name" json:"name"`
	SKU           string `bson:"sku" json:"sku"`
	StockQuantity int    `bson:"stock_quantity" json:"stockQuantity"`
	ReorderLevel  int    `bson:"reorder_level" json:"reorderLevel"`
}

// LowStockSnapshot is the outcome of one low-stock sweep.
type LowStockSnapshot struct {
	TakenAt  time.Time      `bson:"taken_at" json:"takenAt"`
	Count    int            `bson:"count" json:"count"`
	Scanned  int            `bson:"scanned" json:"scanned"`
	Products []LowStockItem `bson:"products" json:"products"`
}
