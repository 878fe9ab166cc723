package usecase

import (
	"context"

	"fulfillment-core/internal/domain/lock"
	"fulfillment-core/internal/domain/order"
	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/domain/webhook"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"
	"fulfillment-core/internal/pkg/jwt"
	"fulfillment-core/internal/pkg/password"

	"github.com/google/uuid"
)

// TransactionDetail is the full audit view of one transaction.
type TransactionDetail struct {
	Transaction *transaction.Transaction
	Orders      []*order.Order
	Logs        []transaction.LogEntry
}

// Admin serves the operator surface: authentication, manual reprocessing
// and the audit views. Reprocess goes through the same reconcile funnel as
// every automated trigger; the only difference is that hard errors surface
// to the operator instead of being retried.
type Admin struct {
	transactions TransactionStore
	orders       OrderStore
	locks        LockStore
	jobs         QueueStore
	webhookLogs  WebhookLogStore
	txLogs       TransactionLogStore
	reconciler   *Reconciler
	jwtService   *jwt.Service
	cfg          config.AdminConfig
	reconcileCfg config.ReconcileConfig
}

func NewAdmin(
	transactions TransactionStore,
	orders OrderStore,
	locks LockStore,
	jobs QueueStore,
	webhookLogs WebhookLogStore,
	txLogs TransactionLogStore,
	reconciler *Reconciler,
	jwtService *jwt.Service,
	cfg config.AdminConfig,
	reconcileCfg config.ReconcileConfig,
) *Admin {
	return &Admin{
		transactions: transactions,
		orders:       orders,
		locks:        locks,
		jobs:         jobs,
		webhookLogs:  webhookLogs,
		txLogs:       txLogs,
		reconciler:   reconciler,
		jwtService:   jwtService,
		cfg:          cfg,
		reconcileCfg: reconcileCfg,
	}
}

func (a *Admin) Login(_ context.Context, email, plainPassword string) (string, error) {
	if email != a.cfg.Email {
		return "", errs.Mark(errs.New("unknown admin email"), errs.ErrInvalidCredentials)
	}
	if err := password.ComparePassword(a.cfg.PasswordHash, plainPassword); err != nil {
		return "", errs.Mark(err, errs.ErrInvalidCredentials)
	}
	token, err := a.jwtService.GenerateToken(email, "admin")
	if err != nil {
		return "", errs.Wrap(err, "failed to generate token")
	}
	return token, nil
}

// Reprocess re-runs reconciliation for one transaction on operator demand.
func (a *Admin) Reprocess(ctx context.Context, transactionID uuid.UUID) (ReconcileResult, error) {
	return a.reconciler.Reconcile(ctx, transactionID)
}

func (a *Admin) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*TransactionDetail, error) {
	tx, err := a.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	orders, err := a.orders.ListByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	logs, err := a.txLogs.ListByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &TransactionDetail{Transaction: tx, Orders: orders, Logs: logs}, nil
}

// ListStalled returns the transactions automation gave up on: at the
// attempt ceiling or flagged for review. Each one needs an operator, who
// can resolve it through Reprocess.
func (a *Admin) ListStalled(ctx context.Context, limit int) ([]*transaction.Transaction, error) {
	return a.transactions.ListStalled(ctx, a.reconcileCfg.AttemptCeiling, limit)
}

func (a *Admin) ListLocks(ctx context.Context) ([]lock.Lock, error) {
	return a.locks.List(ctx)
}

func (a *Admin) ListQueueFailures(ctx context.Context, limit int) ([]queue.FailedJob, error) {
	return a.jobs.ListFailures(ctx, limit)
}

func (a *Admin) ListWebhookLogs(ctx context.Context, limit int) ([]webhook.LogEntry, error) {
	return a.webhookLogs.ListRecent(ctx, limit)
}
