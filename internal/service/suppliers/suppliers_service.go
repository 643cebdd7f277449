package suppliers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const suppliersEndpoint = "/Suppliers"

// Service maps supplier operations onto the inventory API.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new suppliers service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func supplierPath(id string) string {
	return suppliersEndpoint + "/" + url.PathEscape(id)
}

func (s *Service) List(ctx context.Context) ([]models.Supplier, error) {
	items, err := inventoryapi.List[models.Supplier](ctx, s.api, suppliersEndpoint)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Supplier, error) {
	c, err := inventoryapi.Get[models.Supplier](ctx, s.api, supplierPath(id))
	if err != nil {
		return nil, fmt.Errorf("get supplier %s: %w", id, err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req models.UpsertSupplierRequest) (*models.Supplier, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	c, err := inventoryapi.Post[models.Supplier](ctx, s.api, suppliersEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req models.UpsertSupplierRequest) (*models.Supplier, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	c, err := inventoryapi.Put[models.Supplier](ctx, s.api, supplierPath(id), req)
	if err != nil {
		return nil, fmt.Errorf("update supplier %s: %w", id, err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := inventoryapi.Exec(ctx, s.api, http.MethodDelete, supplierPath(id), nil); err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}
	return nil
}
