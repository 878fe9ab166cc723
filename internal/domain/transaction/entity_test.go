//go:build unit

package transaction_test

import (
	"testing"

	"fulfillment-core/internal/domain/transaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid transaction", func(t *testing.T) {
		tx, err := transaction.New(1990, "BRL", transaction.ServiceLikes, "svc-101", "someuser", 100)
		require.NoError(t, err)
		require.NotNil(t, tx)

		assert.Equal(t, transaction.PaymentPending, tx.PaymentStatus)
		assert.Equal(t, transaction.FulfillmentNotDispatched, tx.FulfillmentStatus)
		assert.NotNil(t, tx.Metadata)
		assert.False(t, tx.Dispatchable())
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := transaction.New(0, "BRL", transaction.ServiceLikes, "svc-101", "", 100)
		require.ErrorIs(t, err, transaction.ErrInvalidAmount)

		_, err = transaction.New(-10, "BRL", transaction.ServiceLikes, "svc-101", "", 100)
		require.ErrorIs(t, err, transaction.ErrInvalidAmount)
	})

	t.Run("missing provider service rejected", func(t *testing.T) {
		_, err := transaction.New(1990, "BRL", transaction.ServiceLikes, "", "", 100)
		require.ErrorIs(t, err, transaction.ErrMissingService)
	})
}

func TestDispatchable(t *testing.T) {
	cases := []struct {
		name        string
		payment     transaction.PaymentStatus
		fulfillment transaction.FulfillmentStatus
		expected    bool
	}{
		{name: "approved and not dispatched", payment: transaction.PaymentApproved, fulfillment: transaction.FulfillmentNotDispatched, expected: true},
		{name: "approved after failed attempt", payment: transaction.PaymentApproved, fulfillment: transaction.FulfillmentError, expected: true},
		{name: "already dispatched", payment: transaction.PaymentApproved, fulfillment: transaction.FulfillmentDispatched, expected: false},
		{name: "pending payment", payment: transaction.PaymentPending, fulfillment: transaction.FulfillmentNotDispatched, expected: false},
		{name: "rejected payment", payment: transaction.PaymentRejected, fulfillment: transaction.FulfillmentNotDispatched, expected: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tx := &transaction.Transaction{PaymentStatus: c.payment, FulfillmentStatus: c.fulfillment}
			assert.Equal(t, c.expected, tx.Dispatchable())
		})
	}
}

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		in       string
		expected transaction.PaymentStatus
	}{
		{in: "approved", expected: transaction.PaymentApproved},
		{in: "pending", expected: transaction.PaymentPending},
		{in: "in_process", expected: transaction.PaymentPending},
		{in: "rejected", expected: transaction.PaymentRejected},
		{in: "cancelled", expected: transaction.PaymentRejected},
		{in: "refunded", expected: transaction.PaymentRefunded},
		{in: "charged_back", expected: transaction.PaymentPending},
		{in: "", expected: transaction.PaymentPending},
	}

	for _, c := range cases {
		t.Run("status "+c.in, func(t *testing.T) {
			assert.Equal(t, c.expected, transaction.MapGatewayStatus(c.in))
		})
	}
}

func TestIsProfileService(t *testing.T) {
	assert.True(t, transaction.ServiceFollowers.IsProfileService())
	assert.False(t, transaction.ServiceLikes.IsProfileService())
	assert.False(t, transaction.ServiceReels.IsProfileService())
	assert.False(t, transaction.ServiceComments.IsProfileService())
	assert.False(t, transaction.ServiceGeneric.IsProfileService())
}
