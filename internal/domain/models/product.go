package models

import "github.com/shopspring/decimal"

// Product is a catalogue item with its current stock level.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQuantity int             `json:"stockQuantity"`
	ReorderLevel  int             `json:"reorderLevel"`
	IsActive      bool            `json:"isActive"`
}

// IsLowStock reports whether stock is at or below the reorder level.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.ReorderLevel
}

// UpsertProductRequest is the body for creating or replacing a product.
type UpsertProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	SKU           string          `json:"sku" validate:"required"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	ReorderLevel  int             `json:"reorderLevel" validate:"gte=0"`
	IsActive      bool            `json:"isActive"`
}

// AdjustStockRequest moves stock up or down outside of orders and supplies.
type AdjustStockRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"ne=0"`
	Reason    string `json:"reason" validate:"required"`
}
