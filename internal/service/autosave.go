package service

import (
	"context"
	"errors"
	"time"
)

// DefaultAutosaveInterval is the default period between background saves.
const DefaultAutosaveInterval = 5 * time.Second

// AutoSaver periodically persists the active student's catalog. The core has
// no timing dependency of its own; the caller owns the autosave lifecycle
// and cancels it with the context when the session ends.
type AutoSaver struct {
	catalogs CatalogService
	interval time.Duration
	observer UseCaseObserver
}

// NewAutoSaver builds an autosaver over the given catalog service. A
// non-positive interval falls back to the default.
func NewAutoSaver(catalogs CatalogService, interval time.Duration, observers ...UseCaseObserver) *AutoSaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &AutoSaver{
		catalogs: catalogs,
		interval: interval,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Run saves on every tick until the context is cancelled. Ticks with no
// active student are skipped. Save failures are reported to the observer and
// retried on the next tick; only an explicit SaveStudent surfaces errors to
// the user.
func (a *AutoSaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.catalogs.ActiveStudent() == "" {
				continue
			}
			startedAt := time.Now().UTC()
			err := a.catalogs.SaveStudent(ctx)
			if err != nil && errors.Is(err, context.Canceled) {
				return
			}
			a.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:      "autosave",
				StartedAt: startedAt,
				Duration:  time.Since(startedAt),
				Success:   err == nil,
				Err:       err,
				Fields:    map[string]any{"student": a.catalogs.ActiveStudent()},
			})
		}
	}
}
