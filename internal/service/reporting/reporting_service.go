package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/auth"
	"github.com/mamadbah2/stockdesk/internal/service/dashboard"
	"github.com/mamadbah2/stockdesk/internal/service/products"
	"github.com/mamadbah2/stockdesk/internal/session"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const (
	dateLayout       = "2006-01-02 15:04"
	lowStockSheetTab = "LowStock!A:F"
)

// ErrNoToken is returned when the sweep account signs in without receiving a token.
var ErrNoToken = errors.New("sweep account received no token")

// SnapshotStore persists sweep outcomes.
type SnapshotStore interface {
	SaveLowStockSnapshot(ctx context.Context, snapshot models.LowStockSnapshot) error
}

// RowAppender exports sweep outcomes to a spreadsheet.
type RowAppender interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
}

// Service runs the low-stock sweep on behalf of a service account.
type Service struct {
	api    *inventoryapi.Client
	creds  config.SweepConfig
	store  SnapshotStore
	sheet  RowAppender
	now    func() time.Time
	logger *zap.Logger
}

// NewService wires a new reporting service instance. sheet may be nil when
// spreadsheet export is not configured.
func NewService(api *inventoryapi.Client, creds config.SweepConfig, store SnapshotStore, sheet RowAppender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:    api,
		creds:  creds,
		store:  store,
		sheet:  sheet,
		now:    time.Now,
		logger: logger,
	}
}

// RunLowStockSweep signs in, lists the catalogue and records the products at
// or below their reorder level. A failed spreadsheet export is logged but
// does not fail the sweep once the snapshot is stored.
func (s *Service) RunLowStockSweep(ctx context.Context) (*models.LowStockSnapshot, error) {
	sess := &session.Session{}
	api := s.api.As(sess)

	login := models.LoginRequest{UserName: s.creds.UserName, Password: s.creds.Password}
	if _, err := auth.NewService(api, s.logger).Login(ctx, sess, login); err != nil {
		return nil, fmt.Errorf("sweep login: %w", err)
	}
	if !sess.IsAuthenticated() {
		return nil, ErrNoToken
	}

	catalogue, err := products.NewService(api, s.logger).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sweep catalogue: %w", err)
	}

	snapshot := buildSnapshot(s.now().UTC(), catalogue)
	if err := s.store.SaveLowStockSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	s.logger.Info("low-stock sweep completed",
		zap.Int("scanned", snapshot.Scanned),
		zap.Int("low_stock", snapshot.Count))

	if s.sheet != nil && snapshot.Count > 0 {
		if err := s.sheet.AppendRows(ctx, lowStockSheetTab, snapshotRows(snapshot)); err != nil {
			s.logger.Warn("failed to export snapshot to sheet", zap.Error(err))
		}
	}
	return &snapshot, nil
}

func buildSnapshot(takenAt time.Time, catalogue []models.Product) models.LowStockSnapshot {
	low := dashboard.LowStock(catalogue)
	items := make([]models.LowStockItem, 0, len(low))
	for _, p := range low {
		items = append(items, models.LowStockItem{
			ProductID:     p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			StockQuantity: p.StockQuantity,
			ReorderLevel:  p.ReorderLevel,
		})
	}
	return models.LowStockSnapshot{
		TakenAt:  takenAt,
		Count:    len(items),
		Scanned:  len(catalogue),
		Products: items,
	}
}

func snapshotRows(snapshot models.LowStockSnapshot) [][]interface{} {
	taken := snapshot.TakenAt.Format(dateLayout)
	rows := make([][]interface{}, 0, len(snapshot.Products))
	for _, item := range snapshot.Products {
		rows = append(rows, []interface{}{taken, item.SKU, item.Name, item.StockQuantity, item.ReorderLevel, item.ProductID})
	}
	return rows
}
