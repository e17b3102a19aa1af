package report

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

type statsSource interface {
	Stats(ctx context.Context) ([]domain.TableStats, error)
}

// Scheduler periodically logs per-table row counts.
type Scheduler struct {
	cron    *cron.Cron
	stats   statsSource
	logger  *zap.Logger
	timeout time.Duration
}

func NewScheduler(stats statsSource, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		stats:   stats,
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// Start registers the report under the given six-field cron schedule and
// starts the scheduler.
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		_, _ = s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", schedule, err)
	}

	s.logger.Info("report scheduler started", zap.String("schedule", schedule))
	s.cron.Start()
	return nil
}

// Stop waits for a running report to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce collects and logs the statistics.
func (s *Scheduler) RunOnce(ctx context.Context) ([]domain.TableStats, error) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		s.logger.Error("table report failed", zap.Error(err))
		return nil, err
	}
	for _, st := range stats {
		s.logger.Info("table report",
			zap.String("table", st.Table),
			zap.Int64("total", st.Total),
			zap.Int64("marked_for_delete", st.MarkedForDelete),
		)
	}
	return stats, nil
}
