package worker

import (
	"context"
	"dealTracker/internal/logger"
	"dealTracker/internal/service"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const defaultInterval = 5 * time.Minute

type OverdueReporter interface {
	OverdueReport(ctx context.Context) ([]service.DealOverdue, error)
}

// OverdueWorker periodically logs which deals have overdue tasks. It only
// reads; overdue is a derived flag and nothing is written back.
type OverdueWorker struct {
	reporter OverdueReporter
	interval time.Duration
}

func NewOverdueWorker(reporter OverdueReporter, interval *time.Duration) *OverdueWorker {
	intervalToSet := defaultInterval
	if interval != nil && *interval > 0 {
		intervalToSet = *interval
	}

	return &OverdueWorker{
		reporter: reporter,
		interval: intervalToSet,
	}
}

func (w *OverdueWorker) Interval() time.Duration {
	return w.interval
}

// Start blocks until ctx is cancelled.
func (w *OverdueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Worker: overdue monitor started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ticker.C:
			if _, err := w.Check(ctx); err != nil {
				logger.Warn("Worker: overdue check failed", zap.Error(err))
			}
		case <-ctx.Done():
			logger.Info("Worker: overdue monitor stopping")
			return
		}
	}
}

// Check runs one pass and returns the number of overdue tasks found.
func (w *OverdueWorker) Check(ctx context.Context) (int, error) {
	start := time.Now()

	report, err := w.reporter.OverdueReport(ctx)
	if err != nil {
		return 0, fmt.Errorf("overdue report: %w", err)
	}

	total := 0
	for _, entry := range report {
		total += len(entry.Tasks)
		logger.Info("Worker: deal has overdue tasks",
			zap.Int64("deal_id", entry.Deal.ID),
			zap.String("deal", entry.Deal.Name),
			zap.Int("overdue", len(entry.Tasks)))
	}

	logger.Info("Worker: overdue check finished",
		zap.Duration("ms", time.Since(start)),
		zap.Int("deals", len(report)),
		zap.Int("overdue", total))
	return total, nil
}
