package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/session"
	"github.com/mamadbah2/stockdesk/internal/testutil"
)

// newEngine mounts a single handler behind the session middleware, with the
// request authenticated as role.
func newEngine(t *testing.T, role, method, path string, handle func(*Handler) gin.HandlerFunc) (*testutil.FakeAPI, func(target, body string) *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	api := testutil.NewFakeAPI(t)
	store := session.NewMemoryStore()
	mgr := session.NewManager(store, config.SessionConfig{CookieName: "sid", TTL: time.Hour}, logger)
	h := NewHandler(api.Client(), mgr, logger)

	s := &session.Session{ID: "s-1"}
	require.NoError(t, s.SetToken(testutil.RoleToken(t, "tester", role)))
	require.NoError(t, store.Save(context.Background(), s, time.Hour))

	engine := gin.New()
	engine.Use(mgr.Middleware())
	engine.Handle(method, path, handle(h))

	return api, func(target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.ID})
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}
}

func TestGetProductWithoutBodyAnswersNoContent(t *testing.T) {
	api, do := newEngine(t, "Admin", http.MethodGet, "/products/:id", func(h *Handler) gin.HandlerFunc { return h.GetProduct })
	api.On(http.MethodGet, "/Products/p-1", http.StatusOK, nil)

	rec := do("/products/p-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestManagerDashboardRendersPanelErrors(t *testing.T) {
	api, do := newEngine(t, "InventoryManager", http.MethodGet, "/dashboard/manager", func(h *Handler) gin.HandlerFunc { return h.ManagerDashboard })
	api.On(http.MethodGet, "/Products", http.StatusOK, []models.Product{{ID: "p-1", StockQuantity: 1, ReorderLevel: 5}})
	api.On(http.MethodGet, "/Customers", http.StatusOK, []models.Customer{})

	rec := do("/dashboard/manager", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			LowStock  struct{ Data []models.Product } `json:"lowStock"`
			Suppliers struct{ Error string }          `json:"suppliers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.LowStock.Data, 1)
	assert.Equal(t, "Error loading suppliers", body.Data.Suppliers.Error)
}

func TestInventoryReportPassThrough(t *testing.T) {
	api, do := newEngine(t, "Admin", http.MethodPost, "/reports", func(h *Handler) gin.HandlerFunc { return h.InventoryReport })
	api.On(http.MethodPost, "/Reports/inventory", http.StatusOK, `{"rows":[1,2,3]}`)

	rec := do("/reports", `{"fromUtc":"2024-01-01","toUtc":"2024-02-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `{"rows":[1,2,3]}`, string(body.Data))
}

func TestCreateUserRejectsAdminRole(t *testing.T) {
	api, do := newEngine(t, "Admin", http.MethodPost, "/admin/users", func(h *Handler) gin.HandlerFunc { return h.CreateUser })

	rec := do("/admin/users", `{"userName":"eve","email":"eve@example.com","password":"pw","role":"Admin"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role"`)
	assert.Zero(t, api.CallCount())
}

func TestSetLockoutRequiresFlag(t *testing.T) {
	api, do := newEngine(t, "Admin", http.MethodPut, "/users/:id/lockout", func(h *Handler) gin.HandlerFunc { return h.SetLockout })
	api.On(http.MethodPut, "/admin/users/u-1/lockout", http.StatusNoContent, nil)

	rec := do("/users/u-1/lockout", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "lockout")
	assert.Equal(t, 0, api.CallCount())

	rec = do("/users/u-1/lockout", `{"lockout":false}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 1, api.CallCount())
	var sent models.LockoutRequest
	api.LastCall().DecodeBody(t, &sent)
	require.NotNil(t, sent.Lockout)
	assert.False(t, *sent.Lockout)
}

func TestListUsersFailsTogether(t *testing.T) {
	api, do := newEngine(t, "Admin", http.MethodGet, "/admin/users", func(h *Handler) gin.HandlerFunc { return h.ListUsers })
	api.On(http.MethodGet, "/admin/users/managers", http.StatusOK, []models.UserSummary{{ID: "m-1"}})

	rec := do("/admin/users", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"Error loading users"}`, rec.Body.String())
}

func TestListOrdersLimit(t *testing.T) {
	api, do := newEngine(t, "Cashier", http.MethodGet, "/orders", func(h *Handler) gin.HandlerFunc { return h.ListOrders })
	api.On(http.MethodGet, "/Orders", http.StatusOK, []models.Order{})

	assert.Equal(t, http.StatusOK, do("/orders", "").Code)
	assert.Equal(t, "limit=25", api.LastCall().Query)

	assert.Equal(t, http.StatusOK, do("/orders?limit=3", "").Code)
	assert.Equal(t, "limit=3", api.LastCall().Query)

	assert.Equal(t, http.StatusBadRequest, do("/orders?limit=abc", "").Code)
}

func TestNewOrderFormKeepsActiveProducts(t *testing.T) {
	api, do := newEngine(t, "Cashier", http.MethodGet, "/orders/new", func(h *Handler) gin.HandlerFunc { return h.NewOrderForm })
	api.On(http.MethodGet, "/Customers", http.StatusOK, []models.Customer{{ID: "c-1"}})
	api.On(http.MethodGet, "/Products", http.StatusOK, []models.Product{{ID: "p-1", IsActive: true}, {ID: "p-2"}})

	rec := do("/orders/new", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data OrderForm `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Customers, 1)
	require.Len(t, body.Data.Products, 1)
	assert.Equal(t, "p-1", body.Data.Products[0].ID)
}
