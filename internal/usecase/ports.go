package usecase

import (
	"context"
	"time"

	"fulfillment-core/internal/domain/lock"
	"fulfillment-core/internal/domain/order"
	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/domain/webhook"
	"fulfillment-core/internal/infra/gateway"
	"fulfillment-core/internal/infra/notify"
	"fulfillment-core/internal/infra/provider"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase_ports.go -package=mock

type TransactionStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	FindByPaymentRef(ctx context.Context, ref string) (*transaction.Transaction, error)
	FindByMetadataPaymentID(ctx context.Context, paymentID string) (*transaction.Transaction, error)
	FindDispatchedSibling(ctx context.Context, paymentID string, excludeID uuid.UUID) (*transaction.Transaction, error)
	Create(ctx context.Context, t *transaction.Transaction) error
	UpdateFromGateway(ctx context.Context, id uuid.UUID, paymentID string, status transaction.PaymentStatus, payerName, payerEmail string) error
	SetFulfillmentStatus(ctx context.Context, id uuid.UUID, status transaction.FulfillmentStatus) error
	MarkDuplicateOf(ctx context.Context, id, originalID uuid.UUID) error
	MarkNeedsReview(ctx context.Context, id uuid.UUID, reason string) error
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	ListDispatchable(ctx context.Context, attemptCeiling, limit int) ([]*transaction.Transaction, error)
	ListStalled(ctx context.Context, attemptCeiling, limit int) ([]*transaction.Transaction, error)
}

type OrderStore interface {
	Create(ctx context.Context, o *order.Order) error
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*order.Order, error)
	HasCountableOrder(ctx context.Context, transactionID uuid.UUID, targetLink string) (bool, error)
	HasRecentProfileOrder(ctx context.Context, username string, excludeTransaction uuid.UUID, since time.Time) (bool, error)
}

type LockStore interface {
	Acquire(ctx context.Context, transactionID uuid.UUID, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, transactionID uuid.UUID, holder string) error
	List(ctx context.Context) ([]lock.Lock, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type QueueStore interface {
	Enqueue(ctx context.Context, j *queue.Job) error
	HasScheduledPoll(ctx context.Context, paymentID string) (bool, error)
	ClaimNext(ctx context.Context, workerID string, lease time.Duration) (*queue.Job, error)
	Complete(ctx context.Context, jobID uuid.UUID) error
	Reschedule(ctx context.Context, jobID uuid.UUID, runAt time.Time) error
	MoveToFailures(ctx context.Context, j *queue.Job, lastError string) error
	ListFailures(ctx context.Context, limit int) ([]queue.FailedJob, error)
}

type WebhookLogStore interface {
	Insert(ctx context.Context, e *webhook.LogEntry) error
	ListRecent(ctx context.Context, limit int) ([]webhook.LogEntry, error)
}

type TransactionLogStore interface {
	Insert(ctx context.Context, transactionID uuid.UUID, level, message string, metadata map[string]any) error
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]transaction.LogEntry, error)
}

type PaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (*gateway.Payment, error)
}

type ProviderClient interface {
	CreateOrder(ctx context.Context, serviceID, link string, quantity int) (*provider.OrderResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event notify.Event) error
}
