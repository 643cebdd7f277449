package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsMissingFieldsByJSONName(t *testing.T) {
	err := Validate(UpsertProductRequest{Description: "no name or sku"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "is required", verr.Fields["sku"])
	assert.Equal(t, "validation failed: name, sku", verr.Error())
}

func TestValidateDecimalRange(t *testing.T) {
	req := UpsertProductRequest{Name: "Bolt", SKU: "B-1", UnitPrice: decimal.NewFromFloat(-0.5)}

	var verr *ValidationError
	require.ErrorAs(t, Validate(req), &verr)
	assert.Contains(t, verr.Fields, "unitPrice")

	req.UnitPrice = decimal.RequireFromString("4.99")
	assert.NoError(t, Validate(req))
}

func TestValidateOrderLines(t *testing.T) {
	var verr *ValidationError

	require.ErrorAs(t, Validate(CreateOrderRequest{CustomerID: "c-1"}), &verr)
	assert.Contains(t, verr.Fields, "lines")

	req := CreateOrderRequest{CustomerID: "c-1", Lines: []CreateOrderLine{{ProductID: "p-1", Quantity: 0}}}
	require.ErrorAs(t, Validate(req), &verr)
	assert.Contains(t, verr.Fields, "lines[0].quantity")

	req.Lines[0].Quantity = 2
	assert.NoError(t, Validate(req))
}

func TestValidateAdjustStockRejectsZero(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, Validate(AdjustStockRequest{ProductID: "p", Reason: "count"}), &verr)
	assert.Equal(t, "must not be 0", verr.Fields["quantity"])
}

func TestProductIsLowStock(t *testing.T) {
	assert.True(t, Product{StockQuantity: 5, ReorderLevel: 5}.IsLowStock())
	assert.True(t, Product{StockQuantity: 0, ReorderLevel: 3}.IsLowStock())
	assert.False(t, Product{StockQuantity: 6, ReorderLevel: 5}.IsLowStock())
}

func TestTimestampAcceptsZonelessValues(t *testing.T) {
	var order Order
	err := json.Unmarshal([]byte(`{"id":"o-1","orderedAtUtc":"2025-03-04T10:11:12.1234567","totalAmount":12.50}`), &order)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 4, 10, 11, 12, 123456700, time.UTC), order.OrderedAtUTC.Time)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("12.5")))
}

func TestTimestampRoundTripsNull(t *testing.T) {
	var detail UserDetail
	require.NoError(t, json.Unmarshal([]byte(`{"id":"u","lockoutEndUtc":null,"recentActivities":[]}`), &detail))
	assert.Nil(t, detail.LockoutEndUTC)

	raw, err := json.Marshal(NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))))
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-01-02T02:04:05Z"`, string(raw))
}

func TestTimestampKeepsFractionalSeconds(t *testing.T) {
	var order Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":"o-1","orderedAtUtc":"2024-03-01T10:00:00.1234567"}`), &order))

	raw, err := json.Marshal(order.OrderedAtUTC)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01T10:00:00.1234567Z"`, string(raw))
}

func TestMoneyMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(UpsertProductRequest{Name: "n", SKU: "s", UnitPrice: decimal.RequireFromString("3.25")})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"unitPrice":3.25`)
}
