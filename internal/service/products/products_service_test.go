package products

import (
	"context"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/testutil"
)

func fakeProduct(f *gofakeit.Faker) models.Product {
	return models.Product{
		ID:            f.UUID(),
		Name:          f.ProductName(),
		SKU:           f.LetterN(3) + "-" + f.DigitN(4),
		UnitPrice:     decimal.NewFromFloat(f.Price(1, 500)).Round(2),
		StockQuantity: f.Number(0, 200),
		ReorderLevel:  f.Number(0, 50),
		IsActive:      true,
	}
}

func TestListProducts(t *testing.T) {
	f := gofakeit.New(0)
	want := []models.Product{fakeProduct(f), fakeProduct(f), fakeProduct(f)}

	api := testutil.NewFakeAPI(t)
	api.On(http.MethodGet, "/Products", http.StatusOK, want)

	got, err := NewService(api.Client(), nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].SKU, got[i].SKU)
		assert.True(t, want[i].UnitPrice.Equal(got[i].UnitPrice))
	}
}

func TestListProductsEmptyBody(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.On(http.MethodGet, "/Products", http.StatusOK, nil)

	got, err := NewService(api.Client(), nil).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetProductEscapesID(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.On(http.MethodGet, "/Products/a b", http.StatusOK, models.Product{ID: "a b", Name: "Widget"})

	p, err := NewService(api.Client(), nil).Get(context.Background(), "a b")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Widget", p.Name)
}

func TestGetProductNotFound(t *testing.T) {
	api := testutil.NewFakeAPI(t)

	_, err := NewService(api.Client(), nil).Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API Error: Not Found")
}

func TestCreateProductSkipsInvalidRequests(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	svc := NewService(api.Client(), nil)

	_, err := svc.Create(context.Background(), models.UpsertProductRequest{SKU: "W-1"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	_, err = svc.Create(context.Background(), models.UpsertProductRequest{Name: "Widget", SKU: "W-1", StockQuantity: -1})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "stockQuantity")

	assert.Zero(t, api.CallCount())
}

func TestCreateAndUpdateProduct(t *testing.T) {
	f := gofakeit.New(0)
	created := fakeProduct(f)

	api := testutil.NewFakeAPI(t)
	api.On(http.MethodPost, "/Products", http.StatusCreated, created)
	api.On(http.MethodPut, "/Products/"+created.ID, http.StatusNoContent, nil)
	svc := NewService(api.Client(), nil)

	req := models.UpsertProductRequest{
		Name:          created.Name,
		SKU:           created.SKU,
		UnitPrice:     created.UnitPrice,
		StockQuantity: created.StockQuantity,
		ReorderLevel:  created.ReorderLevel,
		IsActive:      true,
	}
	p, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)

	var sent models.UpsertProductRequest
	api.LastCall().DecodeBody(t, &sent)
	assert.Equal(t, req.SKU, sent.SKU)

	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, http.MethodPut, api.LastCall().Method)
}

func TestDeleteProduct(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.On(http.MethodDelete, "/Products/p-1", http.StatusNoContent, nil)

	require.NoError(t, NewService(api.Client(), nil).Delete(context.Background(), "p-1"))
	assert.Equal(t, "/Products/p-1", api.LastCall().Path)
}

func TestAdjustStock(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.On(http.MethodPost, "/Products/adjust-stock", http.StatusOK, "Stock adjusted")
	svc := NewService(api.Client(), nil)

	err := svc.AdjustStock(context.Background(), models.AdjustStockRequest{ProductID: "p-1", Quantity: 0, Reason: "count"})
	require.Error(t, err)
	assert.Zero(t, api.CallCount())

	err = svc.AdjustStock(context.Background(), models.AdjustStockRequest{ProductID: "p-1", Quantity: -3, Reason: "breakage"})
	require.NoError(t, err)

	var sent models.AdjustStockRequest
	api.LastCall().DecodeBody(t, &sent)
	assert.Equal(t, -3, sent.Quantity)
	assert.Equal(t, "breakage", sent.Reason)
}
