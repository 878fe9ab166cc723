//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/infra/repository"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(kind queue.Kind, runAt time.Time) *queue.Job {
	return &queue.Job{
		ID:          uuid.New(),
		Kind:        kind,
		Payload:     []byte(`{"payment_id":"12345678"}`),
		MaxAttempts: 3,
		RunAt:       runAt,
	}
}

func TestQueueRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	clk := clock.NewMockClock(time.Now().UTC())
	repo := repository.NewQueueRepository(pool, clk)
	ctx := context.Background()

	t.Run("claim bumps attempts and leases the job", func(t *testing.T) {
		job := newJob(queue.KindPollPaymentStatus, clk.Now().Add(-time.Second))
		require.NoError(t, repo.Enqueue(ctx, job))

		claimed, err := repo.ClaimNext(ctx, "worker-1", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, job.ID, claimed.ID)
		assert.Equal(t, 1, claimed.Attempts)
		require.NotNil(t, claimed.LeasedBy)
		assert.Equal(t, "worker-1", *claimed.LeasedBy)

		// Leased job is invisible to other workers.
		other, err := repo.ClaimNext(ctx, "worker-2", time.Minute)
		require.NoError(t, err)
		assert.Nil(t, other)

		require.NoError(t, repo.Complete(ctx, job.ID))
	})

	t.Run("future job is not claimable", func(t *testing.T) {
		job := newJob(queue.KindPollPaymentStatus, clk.Now().Add(time.Hour))
		require.NoError(t, repo.Enqueue(ctx, job))

		claimed, err := repo.ClaimNext(ctx, "worker-1", time.Minute)
		require.NoError(t, err)
		assert.Nil(t, claimed)

		require.NoError(t, repo.Complete(ctx, job.ID))
	})

	t.Run("lapsed lease is reclaimed", func(t *testing.T) {
		job := newJob(queue.KindDispatchTransaction, clk.Now().Add(-time.Second))
		require.NoError(t, repo.Enqueue(ctx, job))

		claimed, err := repo.ClaimNext(ctx, "worker-1", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)

		clk.Add(2 * time.Minute)

		reclaimed, err := repo.ClaimNext(ctx, "worker-2", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, job.ID, reclaimed.ID)
		assert.Equal(t, 2, reclaimed.Attempts, "crashed execution still counts")

		require.NoError(t, repo.Complete(ctx, job.ID))
	})

	t.Run("reschedule clears the lease", func(t *testing.T) {
		job := newJob(queue.KindNotifyDownstream, clk.Now().Add(-time.Second))
		require.NoError(t, repo.Enqueue(ctx, job))

		claimed, err := repo.ClaimNext(ctx, "worker-1", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)

		require.NoError(t, repo.Reschedule(ctx, job.ID, clk.Now().Add(-time.Second)))

		reclaimed, err := repo.ClaimNext(ctx, "worker-2", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, job.ID, reclaimed.ID)

		require.NoError(t, repo.Complete(ctx, job.ID))
	})

	t.Run("higher priority wins", func(t *testing.T) {
		low := newJob(queue.KindNotifyDownstream, clk.Now().Add(-time.Minute))
		high := newJob(queue.KindDispatchTransaction, clk.Now().Add(-time.Second))
		high.Priority = 10
		require.NoError(t, repo.Enqueue(ctx, low))
		require.NoError(t, repo.Enqueue(ctx, high))

		claimed, err := repo.ClaimNext(ctx, "worker-1", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, high.ID, claimed.ID)

		require.NoError(t, repo.Complete(ctx, high.ID))
		require.NoError(t, repo.Complete(ctx, low.ID))
	})

	t.Run("scheduled poll is visible by payment id", func(t *testing.T) {
		job := newJob(queue.KindPollPaymentStatus, clk.Now().Add(time.Minute))
		require.NoError(t, repo.Enqueue(ctx, job))

		scheduled, err := repo.HasScheduledPoll(ctx, "12345678")
		require.NoError(t, err)
		assert.True(t, scheduled)

		scheduled, err = repo.HasScheduledPoll(ctx, "87654321")
		require.NoError(t, err)
		assert.False(t, scheduled, "different payment must not count")

		require.NoError(t, repo.Complete(ctx, job.ID))

		// A non-poll job carrying the same payment id does not count.
		dispatch := newJob(queue.KindDispatchTransaction, clk.Now().Add(time.Minute))
		require.NoError(t, repo.Enqueue(ctx, dispatch))

		scheduled, err = repo.HasScheduledPoll(ctx, "12345678")
		require.NoError(t, err)
		assert.False(t, scheduled)

		require.NoError(t, repo.Complete(ctx, dispatch.ID))
	})

	t.Run("dead-letter moves the job atomically", func(t *testing.T) {
		job := newJob(queue.KindNotifyDownstream, clk.Now().Add(-time.Second))
		require.NoError(t, repo.Enqueue(ctx, job))

		claimed, err := repo.ClaimNext(ctx, "worker-1", time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)

		require.NoError(t, repo.MoveToFailures(ctx, claimed, "amqp unreachable"))

		gone, err := repo.ClaimNext(ctx, "worker-2", time.Minute)
		require.NoError(t, err)
		assert.Nil(t, gone)

		failures, err := repo.ListFailures(ctx, 10)
		require.NoError(t, err)
		require.Len(t, failures, 1)
		assert.Equal(t, job.ID, failures[0].JobID)
		assert.Equal(t, "amqp unreachable", failures[0].LastError)
		assert.Equal(t, 1, failures[0].Attempts)
	})
}
