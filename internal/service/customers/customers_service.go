package customers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const customersEndpoint = "/Customers"

// Service maps customer operations onto the inventory API.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new customers service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func customerPath(id string) string {
	return customersEndpoint + "/" + url.PathEscape(id)
}

func (s *Service) List(ctx context.Context) ([]models.Customer, error) {
	items, err := inventoryapi.List[models.Customer](ctx, s.api, customersEndpoint)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Customer, error) {
	c, err := inventoryapi.Get[models.Customer](ctx, s.api, customerPath(id))
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req models.UpsertCustomerRequest) (*models.Customer, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	c, err := inventoryapi.Post[models.Customer](ctx, s.api, customersEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req models.UpsertCustomerRequest) (*models.Customer, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	c, err := inventoryapi.Put[models.Customer](ctx, s.api, customerPath(id), req)
	if err != nil {
		return nil, fmt.Errorf("update customer %s: %w", id, err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := inventoryapi.Exec(ctx, s.api, http.MethodDelete, customerPath(id), nil); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}
