package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const ordersEndpoint = "/Orders"

// Service maps order operations onto the inventory API.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new orders service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func orderPath(id string) string {
	return ordersEndpoint + "/" + url.PathEscape(id)
}

// List returns the most recent orders. A non-positive limit uses
// models.DefaultOrderListLimit.
func (s *Service) List(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = models.DefaultOrderListLimit
	}
	items, err := inventoryapi.List[models.Order](ctx, s.api, ordersEndpoint,
		inventoryapi.WithQuery("limit", strconv.Itoa(limit)))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	o, err := inventoryapi.Get[models.Order](ctx, s.api, orderPath(id))
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// Create places an order after checking it has a customer and at least one line.
func (s *Service) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	o, err := inventoryapi.Post[models.Order](ctx, s.api, ordersEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

// Cancel asks the server to cancel order id. The body is an empty object.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := inventoryapi.Exec(ctx, s.api, http.MethodPost, orderPath(id)+"/cancel", struct{}{}); err != nil {
		return fmt.Errorf("cancel order %s: %w", id, err)
	}
	s.logger.Info("order canceled", zap.String("order_id", id))
	return nil
}
