package repository

import (
	"context"
	"time"

	"fulfillment-core/internal/domain/lock"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/db"
	"fulfillment-core/internal/pkg/clock"

	"github.com/google/uuid"
)

type LockRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewLockRepository(q db.DBTX, clk clock.Clock) *LockRepository {
	return &LockRepository{db: q, clock: clk}
}

// Acquire attempts to take the per-transaction lock in a single statement.
// The insert wins when no row exists; the conflict branch steals the row
// only when the previous holder's TTL has passed. Returns false when a
// live lock is held elsewhere. Contention is a normal outcome, not an
// error.
func (r *LockRepository) Acquire(ctx context.Context, transactionID uuid.UUID, holder string, ttl time.Duration) (bool, error) {
	now := r.clock.Now()
	tag, err := r.db.Exec(ctx, `
		INSERT INTO order_locks (transaction_id, holder, acquired_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (transaction_id) DO UPDATE
		SET holder = EXCLUDED.holder,
		    acquired_at = EXCLUDED.acquired_at,
		    expires_at = EXCLUDED.expires_at
		WHERE order_locks.expires_at <= $3`,
		transactionID, holder, now, now.Add(ttl),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire lock", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Release deletes the lock only when still held by the caller, so a
// slow holder cannot release a lock already stolen after TTL expiry.
func (r *LockRepository) Release(ctx context.Context, transactionID uuid.UUID, holder string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM order_locks WHERE transaction_id = $1 AND holder = $2`,
		transactionID, holder,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release lock", err)
	}
	return nil
}

func (r *LockRepository) List(ctx context.Context) ([]lock.Lock, error) {
	rows, err := r.db.Query(ctx, `
		SELECT transaction_id, holder, acquired_at, expires_at
		FROM order_locks
		ORDER BY acquired_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locks", err)
	}
	defer rows.Close()

	var out []lock.Lock
	for rows.Next() {
		var l lock.Lock
		if err := rows.Scan(&l.TransactionID, &l.Holder, &l.AcquiredAt, &l.ExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lock", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locks", err)
	}
	return out, nil
}

func (r *LockRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM order_locks WHERE expires_at <= $1`, r.clock.Now())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired locks", err)
	}
	return tag.RowsAffected(), nil
}
