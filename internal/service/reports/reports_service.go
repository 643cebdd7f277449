package reports

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const inventoryReportEndpoint = "/Reports/inventory"

// Service fetches server-side aggregate reports.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new reports service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// InventoryReport posts the filter and returns the report document unchanged.
// An empty response yields a nil report.
func (s *Service) InventoryReport(ctx context.Context, filter models.InventoryReportFilter) (models.InventoryReport, error) {
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	res, err := s.api.Request(ctx, http.MethodPost, inventoryReportEndpoint, inventoryapi.WithBody(filter))
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}

	switch res.Kind {
	case inventoryapi.KindEmpty:
		return nil, nil
	case inventoryapi.KindJSON:
		return res.JSON, nil
	default:
		return nil, fmt.Errorf("inventory report: %w", inventoryapi.ErrUnexpectedText)
	}
}
