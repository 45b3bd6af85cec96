// Package worker hosts the background cleanup delivery.
package worker

import (
	"context"
	"log/slog"
	"time"

	"homeroom/config"
	"homeroom/internal/delivery"
	"homeroom/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = 6 * time.Hour

// sweepTimeout bounds one sweep so a wedged datastore cannot pile up workers.
const sweepTimeout = 5 * time.Minute

// cleanupWorker runs the credential-store sweep on a fixed interval,
// independent of request traffic. A failed sweep is logged and retried only
// on the next tick.
type cleanupWorker struct {
	interval time.Duration
	logger   *slog.Logger
	uc       usecase.MaintenanceUsecase
	stop     chan struct{}
}

// ServerParams holds dependencies for the cleanup worker.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Uc     usecase.MaintenanceUsecase
}

// NewServer creates the cleanup worker delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Cfg.Cleanup != nil && params.Cfg.Cleanup.Interval > 0 {
		interval = params.Cfg.Cleanup.Interval
	}

	worker := &cleanupWorker{
		interval: interval,
		logger:   params.Logger,
		uc:       params.Uc,
		stop:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: worker.shutdown,
	})

	return worker, nil
}

// Serve runs the sweep loop until shutdown. One sweep runs immediately so a
// freshly deployed instance does not wait a full interval to clear backlog.
func (w *cleanupWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting cleanup worker", slog.Duration("interval", w.interval))

	w.runSweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stop:
			return nil
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

func (w *cleanupWorker) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	if _, err := w.uc.RunCleanup(sweepCtx); err != nil {
		// Next tick is the retry.
		w.logger.Error("Cleanup sweep failed", slog.Any("error", err))
	}
}

func (w *cleanupWorker) shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down cleanup worker")
	close(w.stop)

	return nil
}
