package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"
	"fulfillment-core/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic safety nets: the sweep that rescues
// approved-but-undispatched transactions (missed webhooks, crashed
// workers) and the purge of expired locks. The sweep only enqueues; the
// worker does the dispatching through the usual funnel.
type Scheduler struct {
	cron         *cron.Cron
	transactions usecase.TransactionStore
	jobs         usecase.QueueStore
	clock        clock.Clock
	logger       *slog.Logger
	locks        usecase.LockStore
	cfg          config.ReconcileConfig
	queueCfg     config.QueueConfig
}

func New(
	transactions usecase.TransactionStore,
	jobs usecase.QueueStore,
	locks usecase.LockStore,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.ReconcileConfig,
	queueCfg config.QueueConfig,
) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		transactions: transactions,
		jobs:         jobs,
		locks:        locks,
		clock:        clk,
		logger:       logger,
		cfg:          cfg,
		queueCfg:     queueCfg,
	}
}

func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.cfg.SweepInterval)
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return errs.Wrap(err, "failed to schedule sweep")
	}
	if _, err := s.cron.AddFunc(spec, s.purgeLocks); err != nil {
		return errs.Wrap(err, "failed to schedule lock purge")
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "sweep_interval", s.cfg.SweepInterval)
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// sweep enqueues a dispatch job for every approved transaction that is
// still undispatched and under the attempt ceiling.
func (s *Scheduler) sweep() {
	ctx := context.Background()
	txs, err := s.transactions.ListDispatchable(ctx, s.cfg.AttemptCeiling, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("sweep query failed", "error", err)
		return
	}

	if len(txs) > 0 {
		enqueued := 0
		for _, tx := range txs {
			job := &queue.Job{
				ID:            uuid.New(),
				Kind:          queue.KindDispatchTransaction,
				TransactionID: &tx.ID,
				Payload:       []byte(`{}`),
				MaxAttempts:   s.queueCfg.MaxAttempts,
				RunAt:         s.clock.Now(),
			}
			if err := s.jobs.Enqueue(ctx, job); err != nil {
				s.logger.Error("sweep enqueue failed", "transaction_id", tx.ID, "error", err)
				continue
			}
			enqueued++
		}
		s.logger.Info("sweep enqueued dispatch jobs", "count", enqueued)
	}

	s.reportStalled(ctx)
}

// reportStalled surfaces approved transactions the sweep will never pick
// up again, at the attempt ceiling or flagged for review. They only move
// forward through the admin surface, so each sweep shouts about them.
func (s *Scheduler) reportStalled(ctx context.Context) {
	stalled, err := s.transactions.ListStalled(ctx, s.cfg.AttemptCeiling, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("stalled query failed", "error", err)
		return
	}
	if len(stalled) == 0 {
		return
	}
	ids := make([]string, 0, len(stalled))
	for _, tx := range stalled {
		ids = append(ids, tx.ID.String())
	}
	s.logger.Warn("transactions need operator attention", "count", len(stalled), "ids", ids)
}

func (s *Scheduler) purgeLocks() {
	purged, err := s.locks.PurgeExpired(context.Background())
	if err != nil {
		s.logger.Error("lock purge failed", "error", err)
		return
	}
	if purged > 0 {
		s.logger.Info("purged expired locks", "count", purged)
	}
}
