//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-core/internal/infra/repository"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	clk := clock.NewMockClock(time.Now().UTC())
	repo := repository.NewLockRepository(pool, clk)
	ctx := context.Background()

	t.Run("acquire and contention", func(t *testing.T) {
		txID := uuid.New()

		ok, err := repo.Acquire(ctx, txID, "holder-a", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Acquire(ctx, txID, "holder-b", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok, "live lock must not be stealable")

		require.NoError(t, repo.Release(ctx, txID, "holder-a"))

		ok, err = repo.Acquire(ctx, txID, "holder-b", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "released lock must be acquirable")
	})

	t.Run("expired lock is stolen", func(t *testing.T) {
		txID := uuid.New()

		ok, err := repo.Acquire(ctx, txID, "holder-a", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		clk.Add(2 * time.Minute)

		ok, err = repo.Acquire(ctx, txID, "holder-b", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "expired lock must be stealable")

		locks, err := repo.List(ctx)
		require.NoError(t, err)
		var holder string
		for _, l := range locks {
			if l.TransactionID == txID {
				holder = l.Holder
			}
		}
		assert.Equal(t, "holder-b", holder)
	})

	t.Run("release requires the owning holder", func(t *testing.T) {
		txID := uuid.New()

		ok, err := repo.Acquire(ctx, txID, "holder-a", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, repo.Release(ctx, txID, "holder-b"))

		ok, err = repo.Acquire(ctx, txID, "holder-c", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok, "foreign release must not free the lock")
	})

	t.Run("purge removes only expired locks", func(t *testing.T) {
		liveID := uuid.New()
		staleID := uuid.New()

		ok, err := repo.Acquire(ctx, staleID, "holder-a", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		clk.Add(2 * time.Minute)

		ok, err = repo.Acquire(ctx, liveID, "holder-a", time.Hour)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = repo.PurgeExpired(ctx)
		require.NoError(t, err)

		locks, err := repo.List(ctx)
		require.NoError(t, err)
		ids := make(map[uuid.UUID]bool, len(locks))
		for _, l := range locks {
			ids[l.TransactionID] = true
		}
		assert.True(t, ids[liveID])
		assert.False(t, ids[staleID])
	})
}
