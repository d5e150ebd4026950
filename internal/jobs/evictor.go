package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Evicter removes stale cached records and reports how many were deleted.
type Evicter interface {
	Evict(ctx context.Context) (int64, error)
}

// Evictor runs periodic eviction passes in the background, in addition to the
// pass that follows every search.
type Evictor struct {
	evicter  Evicter
	interval time.Duration
}

// NewEvictor creates a new background evictor.
func NewEvictor(evicter Evicter, interval time.Duration) *Evictor {
	return &Evictor{
		evicter:  evicter,
		interval: interval,
	}
}

// Start begins the eviction loop and blocks until ctx is cancelled.
func (e *Evictor) Start(ctx context.Context) {
	slog.Info("evictor started", "interval", e.interval)

	// Run immediately on start
	e.runOnce(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("evictor stopped")
			return
		case <-ticker.C:
			e.runOnce(ctx)
		}
	}
}

func (e *Evictor) runOnce(ctx context.Context) {
	if _, err := e.evicter.Evict(ctx); err != nil && ctx.Err() == nil {
		slog.Error("eviction pass failed", "error", err)
	}
}
