package models

import "github.com/shopspring/decimal"

// DefaultOrderListLimit is used when no limit is requested.
const DefaultOrderListLimit = 25

// Order is a customer order with its lines. Totals are computed server side.
type Order struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	OrderedAtUTC Timestamp       `json:"orderedAtUtc"`
	IsCanceled   bool            `json:"isCanceled"`
	Lines        []OrderLine     `json:"lines"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// OrderLine is one product on an order.
type OrderLine struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest places a new order.
type CreateOrderRequest struct {
	CustomerID string            `json:"customerId" validate:"required"`
	Lines      []CreateOrderLine `json:"lines" validate:"required,min=1,dive"`
}

// CreateOrderLine is the wire shape of a line in CreateOrderRequest.
type CreateOrderLine struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}
