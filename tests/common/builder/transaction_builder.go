//go:build unit || integration

package builder

import (
	"time"

	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

type TransactionBuilder struct {
	ID                uuid.UUID
	PaymentID         *string
	ExternalReference *string
	AmountCents       int64
	PaymentStatus     transaction.PaymentStatus
	FulfillmentStatus transaction.FulfillmentStatus
	ServiceType       transaction.ServiceType
	ProviderServiceID string
	TargetUsername    string
	TargetPosts       []transaction.TargetPost
	Quantity          int
	Attempts          int
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:                uuid.New(),
		PaymentID:         ptr.To("12345678"),
		ExternalReference: ptr.To("order-abc"),
		AmountCents:       1990,
		PaymentStatus:     transaction.PaymentApproved,
		FulfillmentStatus: transaction.FulfillmentNotDispatched,
		ServiceType:       transaction.ServiceLikes,
		ProviderServiceID: "svc-101",
		TargetUsername:    "someuser",
		TargetPosts: []transaction.TargetPost{
			{ID: "p1", Code: "ABCDEFGHIJK", Link: "https://instagram.com/p/ABCDEFGHIJK/"},
		},
		Quantity: 100,
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) WithPosts(posts ...transaction.TargetPost) *TransactionBuilder {
	b.TargetPosts = posts
	return b
}

func (b *TransactionBuilder) WithProfileService(username string) *TransactionBuilder {
	b.ServiceType = transaction.ServiceFollowers
	b.TargetUsername = username
	b.TargetPosts = nil
	return b
}

func (b *TransactionBuilder) WithPaymentStatus(s transaction.PaymentStatus) *TransactionBuilder {
	b.PaymentStatus = s
	return b
}

func (b *TransactionBuilder) WithFulfillmentStatus(s transaction.FulfillmentStatus) *TransactionBuilder {
	b.FulfillmentStatus = s
	return b
}

func (b *TransactionBuilder) WithQuantity(q int) *TransactionBuilder {
	b.Quantity = q
	return b
}

func (b *TransactionBuilder) WithPaymentID(id string) *TransactionBuilder {
	b.PaymentID = ptr.To(id)
	return b
}

func (b *TransactionBuilder) Build() *transaction.Transaction {
	now := time.Now()
	return &transaction.Transaction{
		ID:                b.ID,
		PaymentID:         b.PaymentID,
		ExternalReference: b.ExternalReference,
		AmountCents:       b.AmountCents,
		Currency:          "BRL",
		PaymentStatus:     b.PaymentStatus,
		FulfillmentStatus: b.FulfillmentStatus,
		ServiceType:       b.ServiceType,
		ProviderServiceID: b.ProviderServiceID,
		TargetUsername:    b.TargetUsername,
		TargetPosts:       b.TargetPosts,
		Quantity:          b.Quantity,
		Metadata:          map[string]any{},
		Attempts:          b.Attempts,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
