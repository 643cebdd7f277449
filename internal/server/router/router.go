package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/server/handlers"
	"github.com/mamadbah2/stockdesk/internal/session"
)

// Options tunes the engine for its environment.
type Options struct {
	// Production turns on HTTPS redirects.
	Production bool
	// Registry backs /metrics and the request metrics. Nil disables both.
	Registry *prometheus.Registry
}

// New wires the Gin engine with required routes and middlewares.
func New(h *handlers.Handler, sessions *session.Manager, opts Options, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(secureMiddleware(opts.Production))
	if opts.Registry != nil {
		r.Use(newRequestMetrics(opts.Registry).middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	app := r.Group("/", sessions.Middleware())

	app.GET(access.PathHome, h.Home)
	app.GET(access.PathContact, h.Contact)
	app.GET(access.PathLogin, h.LoginPage)
	app.POST(access.PathLogin, h.Login)
	app.POST(access.PathLogout, h.Logout)
	app.POST("/register", h.Register)
	app.GET(access.PathUnauthorized, h.Unauthorized)

	guard := func(route access.Route) gin.HandlerFunc {
		return access.Guard(session.Principal, route)
	}

	app.GET(access.PathDashboard, guard(access.RouteDashboard), h.Dashboard)
	app.GET(access.PathAdminDashboard, guard(access.RouteAdminDashboard), h.AdminDashboard)
	app.GET(access.PathManagerDashboard, guard(access.RouteManagerDashboard), h.ManagerDashboard)
	app.GET(access.PathCashierDashboard, guard(access.RouteCashierDashboard), h.CashierDashboard)

	adminUsers := app.Group(access.PathAdminUsers, guard(access.RouteAdminUsers))
	adminUsers.GET("", h.ListUsers)
	adminUsers.POST("", h.CreateUser)
	adminUsers.GET("/:id", h.GetUser)
	adminUsers.PUT("/:id", h.UpdateUser)
	adminUsers.PUT("/:id/lockout", h.SetLockout)
	adminUsers.DELETE("/:id", h.DeleteUser)

	productRoutes := app.Group(access.PathProducts, guard(access.RouteProducts))
	productRoutes.GET("", h.ListProducts)
	productRoutes.POST("", h.CreateProduct)
	productRoutes.POST("/adjust-stock", h.AdjustStock)
	productRoutes.GET("/:id", h.GetProduct)
	productRoutes.PUT("/:id", h.UpdateProduct)
	productRoutes.DELETE("/:id", h.DeleteProduct)

	customerRoutes := app.Group(access.PathCustomers, guard(access.RouteCustomers))
	customerRoutes.GET("", h.ListCustomers)
	customerRoutes.POST("", h.CreateCustomer)
	customerRoutes.GET("/:id", h.GetCustomer)
	customerRoutes.PUT("/:id", h.UpdateCustomer)
	customerRoutes.DELETE("/:id", h.DeleteCustomer)

	supplierRoutes := app.Group(access.PathSuppliers, guard(access.RouteSuppliers))
	supplierRoutes.GET("", h.ListSuppliers)
	supplierRoutes.POST("", h.CreateSupplier)
	supplierRoutes.GET("/:id", h.GetSupplier)
	supplierRoutes.PUT("/:id", h.UpdateSupplier)
	supplierRoutes.DELETE("/:id", h.DeleteSupplier)

	app.GET(access.PathNewOrder, guard(access.RouteNewOrder), h.NewOrderForm)
	app.POST(access.PathNewOrder, guard(access.RouteNewOrder), h.CreateOrder)
	orderRoutes := app.Group(access.PathOrders, guard(access.RouteOrders))
	orderRoutes.GET("", h.ListOrders)
	orderRoutes.GET("/:id", h.GetOrder)
	orderRoutes.POST("/:id/cancel", h.CancelOrder)

	inventoryRoutes := app.Group(access.PathInventory, guard(access.RouteInventory))
	inventoryRoutes.GET("", h.InventoryPage)
	inventoryRoutes.POST("/supply", h.RecordSupply)
	inventoryRoutes.GET("/history/:productId", h.InventoryHistory)

	reportRoutes := app.Group(access.PathReports, guard(access.RouteReports))
	reportRoutes.GET("", h.ReportsPage)
	reportRoutes.POST("", h.InventoryReport)

	r.NoRoute(h.NotFound)

	logger.Info("router initialized")
	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func secureMiddleware(production bool) gin.HandlerFunc {
	sec := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(c *gin.Context) {
		if err := sec.Process(c.Writer, c.Request); err != nil {
			c.Abort()
		}
	}
}
