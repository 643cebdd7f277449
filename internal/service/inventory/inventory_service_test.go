package inventory

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/testutil"
)

func TestRecordSupply(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.On(http.MethodPost, "/Inventory/supply", http.StatusCreated, models.SupplyRecord{ID: "r-1", QuantityReceived: 12})
	svc := NewService(api.Client(), nil)

	_, err := svc.RecordSupply(context.Background(), models.SupplyRecordRequest{SupplierID: "s-1", ProductID: "p-1"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantityReceived")
	assert.Zero(t, api.CallCount())

	rec, err := svc.RecordSupply(context.Background(), models.SupplyRecordRequest{
		SupplierID: "s-1", ProductID: "p-1", QuantityReceived: 12, ReferenceNumber: "PO-77",
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", rec.ID)
}

func TestHistory(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.On(http.MethodGet, "/Inventory/history/p-1", http.StatusOK,
		`[{"id":"h-1","productId":"p-1","quantity":-2,"type":"Sale","createdAt":"2024-04-02T09:30:00"}]`)

	items, err := NewService(api.Client(), nil).History(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, -2, items[0].Quantity)
	assert.Equal(t, 9, items[0].CreatedAt.Hour())
}
