//go:build integration

package repository_test

import (
	"context"
	"testing"

	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/repository"
	"fulfillment-core/tests/common/builder"
	"fulfillment-core/tests/common/dbtest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := repository.NewTransactionRepository(pool)
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900100").Build()
		tx.Metadata = map[string]any{"origin": "checkout"}
		require.NoError(t, repo.Create(ctx, tx))

		got, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, tx.ID, got.ID)
		assert.Equal(t, tx.AmountCents, got.AmountCents)
		assert.Equal(t, tx.PaymentStatus, got.PaymentStatus)
		if diff := cmp.Diff(tx.TargetPosts, got.TargetPosts); diff != "" {
			t.Errorf("target posts mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "checkout", got.Metadata["origin"])
	})

	t.Run("find by payment ref matches either column", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900200").Build()
		ref := "ext-ref-900200"
		tx.ExternalReference = &ref
		require.NoError(t, repo.Create(ctx, tx))

		byID, err := repo.FindByPaymentRef(ctx, "900200")
		require.NoError(t, err)
		assert.Equal(t, tx.ID, byID.ID)

		byRef, err := repo.FindByPaymentRef(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, tx.ID, byRef.ID)

		_, err = repo.FindByPaymentRef(ctx, "no-such-ref")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find by checkout metadata payment id", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().Build()
		tx.PaymentID = nil
		tx.Metadata = map[string]any{"payment": map[string]any{"id": "900250"}}
		require.NoError(t, repo.Create(ctx, tx))

		got, err := repo.FindByMetadataPaymentID(ctx, "900250")
		require.NoError(t, err)
		assert.Equal(t, tx.ID, got.ID)

		_, err = repo.FindByMetadataPaymentID(ctx, "no-such-payment")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("dispatched sibling detection", func(t *testing.T) {
		dispatched := builder.NewTransactionBuilder().
			WithPaymentID("900300").
			WithFulfillmentStatus(transaction.FulfillmentDispatched).Build()
		newer := builder.NewTransactionBuilder().WithPaymentID("900300").Build()
		require.NoError(t, repo.Create(ctx, dispatched))
		require.NoError(t, repo.Create(ctx, newer))

		sibling, err := repo.FindDispatchedSibling(ctx, "900300", newer.ID)
		require.NoError(t, err)
		assert.Equal(t, dispatched.ID, sibling.ID)

		_, err = repo.FindDispatchedSibling(ctx, "900300", dispatched.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("duplicates are excluded from the sweep", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900400").Build()
		require.NoError(t, repo.Create(ctx, tx))

		list, err := repo.ListDispatchable(ctx, 3, 100)
		require.NoError(t, err)
		assert.True(t, containsTransaction(list, tx.ID))

		require.NoError(t, repo.MarkDuplicateOf(ctx, tx.ID, uuid.New()))

		list, err = repo.ListDispatchable(ctx, 3, 100)
		require.NoError(t, err)
		assert.False(t, containsTransaction(list, tx.ID))

		got, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, got.Metadata["duplicate_of"])
	})

	t.Run("attempt ceiling bounds the sweep", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900500").Build()
		require.NoError(t, repo.Create(ctx, tx))

		for range 3 {
			require.NoError(t, repo.IncrementAttempts(ctx, tx.ID))
		}

		list, err := repo.ListDispatchable(ctx, 3, 100)
		require.NoError(t, err)
		assert.False(t, containsTransaction(list, tx.ID))
	})

	t.Run("review flag moves a row from the sweep to the stalled list", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900550").Build()
		require.NoError(t, repo.Create(ctx, tx))

		list, err := repo.ListDispatchable(ctx, 3, 100)
		require.NoError(t, err)
		assert.True(t, containsTransaction(list, tx.ID))

		require.NoError(t, repo.MarkNeedsReview(ctx, tx.ID, "order row missing after provider accepted"))

		list, err = repo.ListDispatchable(ctx, 3, 100)
		require.NoError(t, err)
		assert.False(t, containsTransaction(list, tx.ID))

		stalled, err := repo.ListStalled(ctx, 3, 100)
		require.NoError(t, err)
		assert.True(t, containsTransaction(stalled, tx.ID))

		got, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, "order row missing after provider accepted", got.Metadata["needs_review"])
	})

	t.Run("attempt ceiling moves a row to the stalled list", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900560").Build()
		require.NoError(t, repo.Create(ctx, tx))

		for range 3 {
			require.NoError(t, repo.IncrementAttempts(ctx, tx.ID))
		}

		stalled, err := repo.ListStalled(ctx, 3, 100)
		require.NoError(t, err)
		assert.True(t, containsTransaction(stalled, tx.ID))
	})

	t.Run("gateway update keeps payer fields when blank", func(t *testing.T) {
		tx := builder.NewTransactionBuilder().WithPaymentID("900600").Build()
		tx.CustomerName = "Original Name"
		require.NoError(t, repo.Create(ctx, tx))

		err := repo.UpdateFromGateway(ctx, tx.ID, "900600", transaction.PaymentApproved, "", "payer@example.com")
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.PaymentApproved, got.PaymentStatus)
		assert.Equal(t, "Original Name", got.CustomerName)
		assert.Equal(t, "payer@example.com", got.CustomerEmail)
	})

	t.Run("set fulfillment status on missing row", func(t *testing.T) {
		err := repo.SetFulfillmentStatus(ctx, uuid.New(), transaction.FulfillmentDispatched)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func containsTransaction(list []*transaction.Transaction, id uuid.UUID) bool {
	for _, tx := range list {
		if tx.ID == id {
			return true
		}
	}
	return false
}
