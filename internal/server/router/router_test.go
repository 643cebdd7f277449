package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/server/handlers"
	"github.com/mamadbah2/stockdesk/internal/session"
	"github.com/mamadbah2/stockdesk/internal/testutil"
)

const cookieName = "sid"

type harness struct {
	api    *testutil.FakeAPI
	store  *session.MemoryStore
	engine *gin.Engine
	reg    *prometheus.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	api := testutil.NewFakeAPI(t)
	store := session.NewMemoryStore()
	mgr := session.NewManager(store, config.SessionConfig{CookieName: cookieName, TTL: time.Hour}, logger)
	reg := prometheus.NewRegistry()

	engine := New(handlers.NewHandler(api.Client(), mgr, logger), mgr, Options{Registry: reg}, logger)
	return &harness{api: api, store: store, engine: engine, reg: reg}
}

// signIn stores an authenticated session for role and returns its cookie.
func (h *harness) signIn(t *testing.T, role string) (*http.Cookie, string) {
	t.Helper()
	token := testutil.RoleToken(t, strings.ToLower(role), role)
	s := &session.Session{ID: "session-" + role, CreatedAt: time.Now()}
	require.NoError(t, s.SetToken(token))
	require.NoError(t, h.store.Save(context.Background(), s, time.Hour))
	return &http.Cookie{Name: cookieName, Value: s.ID}, token
}

func (h *harness) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func TestGuardMatrix(t *testing.T) {
	const (
		allow = ""
		login = "/login"
		deny  = "/unauthorized"
	)
	tests := []struct {
		path                    string
		admin, manager, cashier string
	}{
		{"/dashboard/admin", allow, deny, deny},
		{"/dashboard/manager", deny, allow, deny},
		{"/dashboard/cashier", deny, deny, allow},
		{"/admin/users", allow, deny, deny},
		{"/products", allow, allow, deny},
		{"/suppliers", allow, allow, deny},
		{"/inventory", allow, allow, deny},
		{"/reports", allow, allow, deny},
		{"/customers", allow, allow, allow},
		{"/orders", allow, deny, allow},
		{"/orders/new", allow, deny, allow},
	}

	h := newHarness(t)
	cookies := map[string]*http.Cookie{}
	for _, role := range []string{"Admin", "InventoryManager", "Cashier"} {
		cookies[role], _ = h.signIn(t, role)
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := h.do(http.MethodGet, tt.path, "", nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, login, rec.Header().Get("Location"))

			for role, want := range map[string]string{"Admin": tt.admin, "InventoryManager": tt.manager, "Cashier": tt.cashier} {
				rec := h.do(http.MethodGet, tt.path, "", cookies[role])
				if want == allow {
					assert.NotEqual(t, http.StatusFound, rec.Code, "%s should open %s", role, tt.path)
					continue
				}
				assert.Equal(t, http.StatusFound, rec.Code, "%s on %s", role, tt.path)
				assert.Equal(t, want, rec.Header().Get("Location"), "%s on %s", role, tt.path)
			}
		})
	}
}

func TestDashboardRedirectsByRole(t *testing.T) {
	h := newHarness(t)
	for role, target := range map[string]string{
		"Admin":            "/dashboard/admin",
		"InventoryManager": "/dashboard/manager",
		"Cashier":          "/dashboard/cashier",
	} {
		cookie, _ := h.signIn(t, role)
		rec := h.do(http.MethodGet, "/dashboard", "", cookie)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, target, rec.Header().Get("Location"))
	}
}

func TestLoginThenBrowseWithBearer(t *testing.T) {
	h := newHarness(t)
	token := testutil.RoleToken(t, "carol", "Cashier")
	h.api.On(http.MethodPost, "/Auth/login", http.StatusOK, models.LoginResponse{Token: token})
	h.api.On(http.MethodGet, "/Customers", http.StatusOK, []models.Customer{{ID: "c-1", FullName: "Ada"}})

	rec := h.do(http.MethodPost, "/login", `{"userName":"carol","password":"pw"}`, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/cashier", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)

	rec = h.do(http.MethodGet, "/customers", "", cookies[0])
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+token, h.api.LastCall().Authorization)

	var body struct {
		User struct {
			UserName string `json:"userName"`
		} `json:"user"`
		Nav []struct {
			Path string `json:"path"`
		} `json:"nav"`
		Data []models.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "carol", body.User.UserName)
	require.Len(t, body.Data, 1)

	var paths []string
	for _, item := range body.Nav {
		paths = append(paths, item.Path)
	}
	assert.ElementsMatch(t, []string{"/dashboard", "/customers", "/orders"}, paths)
}

func TestLoginIssuesFreshSessionID(t *testing.T) {
	h := newHarness(t)
	planted := &session.Session{ID: "planted-id", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, h.store.Save(context.Background(), planted, time.Hour))
	h.api.On(http.MethodPost, "/Auth/login", http.StatusOK, models.LoginResponse{Token: testutil.RoleToken(t, "root", "Admin")})

	old := &http.Cookie{Name: cookieName, Value: planted.ID}
	rec := h.do(http.MethodPost, "/login", `{"userName":"root","password":"pw"}`, old)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, planted.ID, cookies[0].Value)

	_, err := h.store.Load(context.Background(), planted.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	rec = h.do(http.MethodGet, "/dashboard/admin", "", old)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = h.do(http.MethodGet, "/dashboard", "", cookies[0])
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/admin", rec.Header().Get("Location"))
}

func TestLoginFailures(t *testing.T) {
	h := newHarness(t)
	h.api.On(http.MethodPost, "/Auth/login", http.StatusUnauthorized, nil)

	rec := h.do(http.MethodPost, "/login", `{"userName":"carol","password":"bad"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	calls := h.api.CallCount()
	rec = h.do(http.MethodPost, "/login", `{"userName":"carol"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "password")
	assert.Equal(t, calls, h.api.CallCount())

	rec = h.do(http.MethodPost, "/login", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutSignsOut(t *testing.T) {
	h := newHarness(t)
	cookie, _ := h.signIn(t, "Admin")

	rec := h.do(http.MethodPost, "/logout", "", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = h.do(http.MethodGet, "/products", "", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestUpstreamFailureRendersNotification(t *testing.T) {
	h := newHarness(t)
	h.api.On(http.MethodGet, "/Products", http.StatusInternalServerError, nil)
	cookie, _ := h.signIn(t, "InventoryManager")

	rec := h.do(http.MethodGet, "/products", "", cookie)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"Error loading products"}`, rec.Body.String())
}

func TestValidationNeverReachesServer(t *testing.T) {
	h := newHarness(t)
	cookie, _ := h.signIn(t, "Cashier")

	rec := h.do(http.MethodPost, "/orders/new", `{"customerId":"c-1","lines":[]}`, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "lines")
	assert.Zero(t, h.api.CallCount())
}

func TestCancelOrder(t *testing.T) {
	h := newHarness(t)
	h.api.On(http.MethodPost, "/Orders/o-7/cancel", http.StatusNoContent, nil)
	cookie, _ := h.signIn(t, "Cashier")

	rec := h.do(http.MethodPost, "/orders/o-7/cancel", "", cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.JSONEq(t, `{}`, string(h.api.LastCall().Body))
}

func TestPublicPages(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/", "/contact", "/login"} {
		rec := h.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := h.do(http.MethodGet, "/", "", nil)
	assert.Contains(t, rec.Body.String(), `"primaryAction":"/login"`)

	cookie, _ := h.signIn(t, "Admin")
	rec = h.do(http.MethodGet, "/", "", cookie)
	assert.Contains(t, rec.Body.String(), `"primaryAction":"/dashboard/admin"`)

	rec = h.do(http.MethodGet, "/unauthorized", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodGet, "/no/such/page", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'self'", rec.Header().Get("Content-Security-Policy"))
}

func TestProductionRedirectsPlainHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.Use(secureMiddleware(true))
	r.GET("/healthz", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://desk.example/healthz", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "https://desk.example/healthz", rec.Header().Get("Location"))
	assert.False(t, reached)

	req := httptest.NewRequest(http.MethodGet, "http://desk.example/healthz", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t)
	h.do(http.MethodGet, "/healthz", "", nil)

	rec := h.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stockdesk_http_requests_total{code="200",route="/healthz"} 1`)
}
