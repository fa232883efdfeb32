package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
)

// IdempotencyJanitor removes idempotency keys past their retention and frees keys whose
// request never completed, for example because the process died mid-request.
type IdempotencyJanitor struct {
	store       application.IdempotencyStore
	interval    time.Duration
	retention   time.Duration
	lockTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

func NewIdempotencyJanitor(
	store application.IdempotencyStore,
	interval time.Duration,
	retention time.Duration,
	lockTimeout time.Duration,
	logger *slog.Logger,
) *IdempotencyJanitor {
	return &IdempotencyJanitor{
		store:       store,
		interval:    interval,
		retention:   retention,
		lockTimeout: lockTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

func (w *IdempotencyJanitor) Start(ctx context.Context) {
	w.logger.Info("idempotency janitor started",
		"interval", w.interval,
		"retention", w.retention,
		"lock_timeout", w.lockTimeout)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if err := w.Sweep(ctx); err != nil {
		w.logger.Error("idempotency sweep failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("idempotency janitor stopping")
			return
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				w.logger.Error("idempotency sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs one cleanup pass.
func (w *IdempotencyJanitor) Sweep(ctx context.Context) error {
	now := w.now()

	released, err := w.store.ReleaseStaleLocks(ctx, now.Add(-w.lockTimeout))
	if err != nil {
		return err
	}

	purged, err := w.store.PurgeExpired(ctx, now.Add(-w.retention))
	if err != nil {
		return err
	}

	if released > 0 || purged > 0 {
		w.logger.Info("idempotency sweep finished",
			"released_locks", released,
			"purged_keys", purged)
	}

	return nil
}
