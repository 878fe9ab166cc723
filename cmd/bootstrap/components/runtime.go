package components

import (
	"context"
	"log/slog"

	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/scheduler"
	"fulfillment-core/internal/usecase"
	"fulfillment-core/internal/worker"

	"go.uber.org/fx"
)

// RuntimeModule wires the background machinery: the queue worker and the
// cron scheduler.
var RuntimeModule = fx.Module("runtime",
	fx.Provide(
		NewWorker,
		worker.NewHandlers,
		NewScheduler,
	),
	fx.Invoke(
		StartWorker,
		StartScheduler,
	),
)

func NewWorker(jobs usecase.QueueStore, clk clock.Clock, logger *slog.Logger, cfg config.Config) *worker.Worker {
	return worker.New(jobs, clk, logger, cfg.Queue)
}

func NewScheduler(
	transactions usecase.TransactionStore,
	jobs usecase.QueueStore,
	locks usecase.LockStore,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *scheduler.Scheduler {
	return scheduler.New(transactions, jobs, locks, clk, logger, cfg.Reconcile, cfg.Queue)
}

func StartWorker(lc fx.Lifecycle, w *worker.Worker, handlers *worker.Handlers) {
	handlers.RegisterAll(w)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				w.Run(runCtx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}

func StartScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
