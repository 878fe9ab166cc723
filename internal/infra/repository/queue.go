package repository

import (
	"context"
	"time"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/db"
	"fulfillment-core/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QueueRepository struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewQueueRepository(pool *pgxpool.Pool, clk clock.Clock) *QueueRepository {
	return &QueueRepository{pool: pool, clock: clk}
}

const jobColumns = `
	id, kind, transaction_id, payload, priority, attempts, max_attempts,
	run_at, leased_by, lease_expires_at, created_at, updated_at`

func scanJob(row pgx.Row) (*queue.Job, error) {
	var j queue.Job
	err := row.Scan(
		&j.ID, &j.Kind, &j.TransactionID, &j.Payload, &j.Priority, &j.Attempts,
		&j.MaxAttempts, &j.RunAt, &j.LeasedBy, &j.LeaseExpiresAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *QueueRepository) Enqueue(ctx context.Context, j *queue.Job) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO queue_jobs (id, kind, transaction_id, payload, priority, max_attempts, run_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.Kind, j.TransactionID, j.Payload, j.Priority, j.MaxAttempts, j.RunAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue job", err)
	}
	return nil
}

// HasScheduledPoll reports whether any poll job for the payment is still
// queued. Gateways redeliver webhooks, and each redelivery must not stack
// another round of polls on top of the first.
func (r *QueueRepository) HasScheduledPoll(ctx context.Context, paymentID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM queue_jobs
			WHERE kind = $1 AND payload->>'payment_id' = $2
		)`, queue.KindPollPaymentStatus, paymentID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check scheduled polls", err)
	}
	return exists, nil
}

// ClaimNext leases the highest-priority due job to the given worker. Jobs
// whose lease has lapsed become claimable again, which is how work is
// recovered from dead workers. SKIP LOCKED keeps concurrent workers from
// blocking on each other; the attempt counter is bumped at claim time so
// an execution counts even if the worker dies mid-flight.
func (r *QueueRepository) ClaimNext(ctx context.Context, workerID string, lease time.Duration) (*queue.Job, error) {
	now := r.clock.Now()
	row := r.pool.QueryRow(ctx, `
		UPDATE queue_jobs
		SET leased_by = $1,
		    lease_expires_at = $3,
		    attempts = attempts + 1,
		    updated_at = $2
		WHERE id = (
			SELECT id FROM queue_jobs
			WHERE run_at <= $2
			  AND (lease_expires_at IS NULL OR lease_expires_at <= $2)
			ORDER BY priority DESC, run_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+jobColumns,
		workerID, now, now.Add(lease),
	)
	j, err := scanJob(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to claim job", err)
	}
	return j, nil
}

func (r *QueueRepository) Complete(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM queue_jobs WHERE id = $1`, jobID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete job", err)
	}
	return nil
}

// Reschedule releases the lease and pushes the job out to runAt for the
// next attempt.
func (r *QueueRepository) Reschedule(ctx context.Context, jobID uuid.UUID, runAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE queue_jobs
		SET run_at = $2, leased_by = NULL, lease_expires_at = NULL, updated_at = $3
		WHERE id = $1`,
		jobID, runAt, r.clock.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule job", err)
	}
	return nil
}

// MoveToFailures copies an exhausted job into the dead-letter table and
// removes it from the live queue in one transaction.
func (r *QueueRepository) MoveToFailures(ctx context.Context, j *queue.Job, lastError string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin dead-letter transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO queue_failures (id, job_id, kind, transaction_id, payload, attempts, last_error, failed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), j.ID, j.Kind, j.TransactionID, j.Payload, j.Attempts, lastError, r.clock.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record job failure", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM queue_jobs WHERE id = $1`, j.ID); err != nil {
		return infra.WrapRepoErr("failed to remove exhausted job", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit dead-letter transaction", err)
	}
	return nil
}

func (r *QueueRepository) ListFailures(ctx context.Context, limit int) ([]queue.FailedJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, job_id, kind, transaction_id, payload, attempts, last_error, failed_at
		FROM queue_failures
		ORDER BY failed_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queue failures", err)
	}
	defer rows.Close()

	var out []queue.FailedJob
	for rows.Next() {
		var f queue.FailedJob
		if err := rows.Scan(&f.ID, &f.JobID, &f.Kind, &f.TransactionID, &f.Payload, &f.Attempts, &f.LastError, &f.FailedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan queue failure", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate queue failures", err)
	}
	return out, nil
}
