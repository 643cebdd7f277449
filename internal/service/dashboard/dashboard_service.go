package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const (
	adminSummaryEndpoint = "/admin/dashboard"
	cashierRecentOrders  = 5
)

// Section is one independently loaded panel of a dashboard. Error holds a
// short notification when the panel failed to load.
type Section[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

// ManagerView backs the inventory manager dashboard.
type ManagerView struct {
	Products  Section[[]models.Product]  `json:"products"`
	LowStock  Section[[]models.Product]  `json:"lowStock"`
	Suppliers Section[[]models.Supplier] `json:"suppliers"`
	Customers Section[[]models.Customer] `json:"customers"`
}

// CashierView backs the cashier dashboard.
type CashierView struct {
	RecentOrders Section[[]models.Order]    `json:"recentOrders"`
	Customers    Section[[]models.Customer] `json:"customers"`
	Products     Section[[]models.Product]  `json:"products"`
}

// Service assembles dashboard data.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new dashboard service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// AdminSummary returns the server-computed admin aggregate.
func (s *Service) AdminSummary(ctx context.Context) (*models.AdminDashboardSummary, error) {
	summary, err := inventoryapi.Get[models.AdminDashboardSummary](ctx, s.api, adminSummaryEndpoint)
	if err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}
	if summary == nil {
		summary = &models.AdminDashboardSummary{}
	}
	return summary, nil
}

// ManagerView loads products, suppliers and customers in parallel. A failed
// panel does not cancel the others.
func (s *Service) ManagerView(ctx context.Context) ManagerView {
	var view ManagerView
	var g errgroup.Group

	g.Go(func() error {
		view.Products = load(ctx, s, "products", func(ctx context.Context) ([]models.Product, error) {
			return inventoryapi.List[models.Product](ctx, s.api, "/Products")
		})
		return nil
	})
	g.Go(func() error {
		view.Suppliers = load(ctx, s, "suppliers", func(ctx context.Context) ([]models.Supplier, error) {
			return inventoryapi.List[models.Supplier](ctx, s.api, "/Suppliers")
		})
		return nil
	})
	g.Go(func() error {
		view.Customers = load(ctx, s, "customers", func(ctx context.Context) ([]models.Customer, error) {
			return inventoryapi.List[models.Customer](ctx, s.api, "/Customers")
		})
		return nil
	})
	_ = g.Wait()

	view.LowStock = Section[[]models.Product]{Error: view.Products.Error, Data: LowStock(view.Products.Data)}
	return view
}

// CashierView loads recent orders, customers and active products in parallel.
func (s *Service) CashierView(ctx context.Context) CashierView {
	var view CashierView
	var g errgroup.Group

	g.Go(func() error {
		view.RecentOrders = load(ctx, s, "orders", func(ctx context.Context) ([]models.Order, error) {
			return inventoryapi.List[models.Order](ctx, s.api, "/Orders",
				inventoryapi.WithQuery("limit", strconv.Itoa(cashierRecentOrders)))
		})
		return nil
	})
	g.Go(func() error {
		view.Customers = load(ctx, s, "customers", func(ctx context.Context) ([]models.Customer, error) {
			return inventoryapi.List[models.Customer](ctx, s.api, "/Customers")
		})
		return nil
	})
	g.Go(func() error {
		view.Products = load(ctx, s, "products", func(ctx context.Context) ([]models.Product, error) {
			items, err := inventoryapi.List[models.Product](ctx, s.api, "/Products")
			return activeOnly(items), err
		})
		return nil
	})
	_ = g.Wait()

	return view
}

// LowStock keeps the products at or below their reorder level.
func LowStock(items []models.Product) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range items {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

func activeOnly(items []models.Product) []models.Product {
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func load[T any](ctx context.Context, s *Service, panel string, fetch func(context.Context) ([]T, error)) Section[[]T] {
	data, err := fetch(ctx)
	if err != nil {
		s.logger.Warn("dashboard panel failed", zap.String("panel", panel), zap.Error(err))
		return Section[[]T]{Data: []T{}, Error: "Error loading " + panel}
	}
	return Section[[]T]{Data: data}
}
