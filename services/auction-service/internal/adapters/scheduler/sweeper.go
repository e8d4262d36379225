// Package scheduler runs periodic lifecycle jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// ExpiredCloser closes published auctions whose end time has passed
type ExpiredCloser interface {
	CloseExpired(ctx context.Context, limit int) (int, error)
}

// ExpirySweeper persists the closed status of expired auctions on a ticker,
// so auctions nobody reads still settle
type ExpirySweeper struct {
	closer    ExpiredCloser
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// NewExpirySweeper creates a sweeper closing up to batchSize auctions per pass
func NewExpirySweeper(closer ExpiredCloser, interval time.Duration, batchSize int, logger *slog.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		closer:    closer,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run sweeps until ctx is cancelled. It returns nil on cancellation.
func (s *ExpirySweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep closes expired auctions in batches until a batch comes back short.
// It returns the number closed.
func (s *ExpirySweeper) Sweep(ctx context.Context) int {
	total := 0
	for ctx.Err() == nil {
		n, err := s.closer.CloseExpired(ctx, s.batchSize)
		if err != nil {
			s.logger.Error("Expiry sweep failed", "error", err)
			break
		}
		total += n
		if n < s.batchSize {
			break
		}
	}
	if total > 0 {
		s.logger.Info("Closed expired auctions", "count", total)
	}
	return total
}
