package worker

import (
	"context"
	"log/slog"
	"time"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/pkg/backoff"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/usecase"

	"github.com/google/uuid"
)

// Handler executes one claimed job. A returned error requeues the job with
// backoff until its attempt budget runs out.
type Handler func(ctx context.Context, j *queue.Job) error

// Worker is the single consumer loop over the durable queue. Claims are
// leases, not removals: a job only leaves the queue on Complete or after
// exhausting its attempts, so a crash mid-job loses nothing.
type Worker struct {
	jobs     usecase.QueueStore
	handlers map[queue.Kind]Handler
	clock    clock.Clock
	logger   *slog.Logger
	cfg      config.QueueConfig
	id       string
}

func New(jobs usecase.QueueStore, clk clock.Clock, logger *slog.Logger, cfg config.QueueConfig) *Worker {
	return &Worker{
		jobs:     jobs,
		handlers: make(map[queue.Kind]Handler),
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
		id:       "worker-" + uuid.NewString(),
	}
}

func (w *Worker) Register(kind queue.Kind, h Handler) {
	w.handlers[kind] = h
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.logger.Info("worker started", "worker_id", w.id)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker stopped", "worker_id", w.id)
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain processes claimable jobs until the queue is empty or the context
// is cancelled.
func (w *Worker) drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		j, err := w.jobs.ClaimNext(ctx, w.id, w.cfg.Lease)
		if err != nil {
			w.logger.Error("failed to claim job", "error", err)
			return
		}
		if j == nil {
			return
		}
		w.handle(ctx, j)
	}
}

func (w *Worker) handle(ctx context.Context, j *queue.Job) {
	handler, ok := w.handlers[j.Kind]
	if !ok {
		w.logger.Error("no handler for job kind", "kind", j.Kind, "job_id", j.ID)
		w.fail(ctx, j, "no handler registered")
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, w.cfg.JobTimeout)
	err := handler(jobCtx, j)
	cancel()

	if err != nil {
		w.logger.Warn("job failed", "kind", j.Kind, "job_id", j.ID, "attempt", j.Attempts, "error", err)
		w.fail(ctx, j, err.Error())
		return
	}
	if err := w.jobs.Complete(ctx, j.ID); err != nil {
		w.logger.Error("failed to complete job", "job_id", j.ID, "error", err)
	}
}

// fail either dead-letters an exhausted job or reschedules it with
// exponential backoff.
func (w *Worker) fail(ctx context.Context, j *queue.Job, reason string) {
	if j.Exhausted() {
		if err := w.jobs.MoveToFailures(ctx, j, reason); err != nil {
			w.logger.Error("failed to dead-letter job", "job_id", j.ID, "error", err)
		}
		return
	}
	runAt := w.clock.Now().Add(backoff.Exponential(w.cfg.BaseDelay, j.Attempts))
	if err := w.jobs.Reschedule(ctx, j.ID, runAt); err != nil {
		w.logger.Error("failed to reschedule job", "job_id", j.ID, "error", err)
	}
}
