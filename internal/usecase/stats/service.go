// Package stats refreshes the forum gauges from storage on a schedule.
package stats

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"qa-forum/internal/observability/metrics"
	"qa-forum/internal/repository"
)

// Service publishes row counts and pool usage as Prometheus gauges.
type Service struct {
	Repo repository.StatsRepository
	// PoolStats is optional. The in-memory store has no pool.
	PoolStats func() sql.DBStats
}

// Refresh reads the current totals and updates the gauges.
func (s *Service) Refresh(ctx context.Context) (repository.Totals, error) {
	totals, err := s.Repo.Count(ctx)
	if err != nil {
		return repository.Totals{}, fmt.Errorf("count entities: %w", err)
	}
	metrics.UpdateEntityTotals(totals.Questions, totals.Answers, totals.Comments)

	if s.PoolStats != nil {
		st := s.PoolStats()
		metrics.UpdateDBConnectionStats(st.InUse, st.Idle)
	}
	return totals, nil
}

// Schedule registers Refresh on c with the given cron spec.
// Each run is bounded by timeout and logs its outcome.
func (s *Service) Schedule(c *cron.Cron, spec string, timeout time.Duration, logger *slog.Logger) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.run(ctx, logger)
	})
	if err != nil {
		return 0, fmt.Errorf("schedule stats refresh %q: %w", spec, err)
	}
	return id, nil
}

func (s *Service) run(ctx context.Context, logger *slog.Logger) {
	start := time.Now()
	totals, err := s.Refresh(ctx)
	if err != nil {
		logger.Error("stats refresh failed", slog.Any("error", err))
		return
	}
	logger.Debug("stats refreshed",
		slog.Int64("questions", totals.Questions),
		slog.Int64("answers", totals.Answers),
		slog.Int64("comments", totals.Comments),
		slog.Duration("duration", time.Since(start)))
}
