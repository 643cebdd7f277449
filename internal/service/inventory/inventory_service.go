package inventory

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const (
	supplyEndpoint  = "/Inventory/supply"
	historyEndpoint = "/Inventory/history"
)

// Service records deliveries and reads stock movements.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new inventory service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// RecordSupply logs a delivery from a supplier.
func (s *Service) RecordSupply(ctx context.Context, req models.SupplyRecordRequest) (*models.SupplyRecord, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	rec, err := inventoryapi.Post[models.SupplyRecord](ctx, s.api, supplyEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("record supply: %w", err)
	}
	s.logger.Info("supply recorded",
		zap.String("product_id", req.ProductID),
		zap.String("supplier_id", req.SupplierID),
		zap.Int("quantity", req.QuantityReceived))
	return rec, nil
}

// History returns the stock movements of a product.
func (s *Service) History(ctx context.Context, productID string) ([]models.InventoryHistory, error) {
	items, err := inventoryapi.List[models.InventoryHistory](ctx, s.api, historyEndpoint+"/"+url.PathEscape(productID))
	if err != nil {
		return nil, fmt.Errorf("inventory history of %s: %w", productID, err)
	}
	return items, nil
}
