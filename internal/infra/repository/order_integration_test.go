//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-core/internal/domain/order"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/repository"
	"fulfillment-core/tests/common/builder"
	"fulfillment-core/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	transactions := repository.NewTransactionRepository(pool)
	repo := repository.NewOrderRepository(pool)
	ctx := context.Background()

	tx := builder.NewTransactionBuilder().Build()
	require.NoError(t, transactions.Create(ctx, tx))

	t.Run("create rejects unknown transaction", func(t *testing.T) {
		o := order.NewPending(uuid.New(), "svc-101", "https://instagram.com/p/AAAAAAAAAAA", "", 50)
		err := repo.Create(ctx, o)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("error orders do not count as existing", func(t *testing.T) {
		link := "https://instagram.com/p/BBBBBBBBBBB"

		failed := order.NewPending(tx.ID, tx.ProviderServiceID, link, "", 50)
		failed.MarkFailed("not enough funds", []byte(`{"error":"not enough funds"}`))
		require.NoError(t, repo.Create(ctx, failed))

		exists, err := repo.HasCountableOrder(ctx, tx.ID, link)
		require.NoError(t, err)
		assert.False(t, exists, "error row must allow a retry")

		sent := order.NewPending(tx.ID, tx.ProviderServiceID, link, "", 50)
		sent.MarkSent("9001", []byte(`{"order":9001}`))
		require.NoError(t, repo.Create(ctx, sent))

		exists, err = repo.HasCountableOrder(ctx, tx.ID, link)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("recent profile order window", func(t *testing.T) {
		otherTx := builder.NewTransactionBuilder().WithProfileService("windowuser").Build()
		require.NoError(t, transactions.Create(ctx, otherTx))

		o := order.NewPending(otherTx.ID, otherTx.ProviderServiceID, order.ProfileLink("windowuser"), "windowuser", 100)
		o.MarkSent("9002", nil)
		require.NoError(t, repo.Create(ctx, o))

		checking := uuid.New()

		recent, err := repo.HasRecentProfileOrder(ctx, "windowuser", checking, time.Now().Add(-30*time.Minute))
		require.NoError(t, err)
		assert.True(t, recent)

		// Outside the window.
		recent, err = repo.HasRecentProfileOrder(ctx, "windowuser", checking, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, recent)

		// The placing transaction itself is excluded.
		recent, err = repo.HasRecentProfileOrder(ctx, "windowuser", otherTx.ID, time.Now().Add(-30*time.Minute))
		require.NoError(t, err)
		assert.False(t, recent)
	})

	t.Run("list by transaction", func(t *testing.T) {
		listTx := builder.NewTransactionBuilder().Build()
		require.NoError(t, transactions.Create(ctx, listTx))

		first := order.NewPending(listTx.ID, listTx.ProviderServiceID, "https://instagram.com/p/CCCCCCCCCCC", "", 30)
		second := order.NewPending(listTx.ID, listTx.ProviderServiceID, "https://instagram.com/p/DDDDDDDDDDD", "", 70)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		orders, err := repo.ListByTransaction(ctx, listTx.ID)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}
