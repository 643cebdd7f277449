package products

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const (
	productsEndpoint = "/Products"
	adjustEndpoint   = "/Products/adjust-stock"
)

// Service maps product operations onto the inventory API.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new products service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func productPath(id string) string {
	return productsEndpoint + "/" + url.PathEscape(id)
}

// List returns every product.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	items, err := inventoryapi.List[models.Product](ctx, s.api, productsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

// Get returns a single product, nil when the server sends no body.
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := inventoryapi.Get[models.Product](ctx, s.api, productPath(id))
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// Create validates req and posts it. Invalid requests are never sent.
func (s *Service) Create(ctx context.Context, req models.UpsertProductRequest) (*models.Product, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	p, err := inventoryapi.Post[models.Product](ctx, s.api, productsEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update replaces product id.
func (s *Service) Update(ctx context.Context, id string, req models.UpsertProductRequest) (*models.Product, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	p, err := inventoryapi.Put[models.Product](ctx, s.api, productPath(id), req)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return p, nil
}

// Delete removes product id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := inventoryapi.Exec(ctx, s.api, http.MethodDelete, productPath(id), nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// AdjustStock applies a manual stock correction.
func (s *Service) AdjustStock(ctx context.Context, req models.AdjustStockRequest) error {
	if err := models.Validate(req); err != nil {
		return err
	}
	if err := inventoryapi.Exec(ctx, s.api, http.MethodPost, adjustEndpoint, req); err != nil {
		return fmt.Errorf("adjust stock of %s: %w", req.ProductID, err)
	}
	s.logger.Info("stock adjusted",
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
		zap.String("reason", req.Reason))
	return nil
}
