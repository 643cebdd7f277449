package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
)

const sweepTimeout = 2 * time.Minute

// Sweeper runs one low-stock sweep.
type Sweeper interface {
	RunLowStockSweep(ctx context.Context) (*models.LowStockSnapshot, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	sweeper  Sweeper
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. The schedule uses the
// standard five-field cron syntax.
func NewScheduler(cfg config.SweepConfig, sweeper Sweeper, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		sweeper:  sweeper,
		schedule: cfg.CronSchedule,
		logger:   logger,
	}
}

// Start registers the sweep and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runSweep); err != nil {
		return fmt.Errorf("schedule low-stock sweep %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runSweep() {
	s.logger.Info("running low-stock sweep")
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	snapshot, err := s.sweeper.RunLowStockSweep(ctx)
	if err != nil {
		s.logger.Error("low-stock sweep failed", zap.Error(err))
		return
	}
	if snapshot.Count > 0 {
		s.logger.Warn("products at or below reorder level", zap.Int("count", snapshot.Count))
	}
}
