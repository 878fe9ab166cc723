package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment-core/internal/domain/order"
	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type ReconcileOutcome string

const (
	OutcomeDispatched         ReconcileOutcome = "dispatched"
	OutcomeAlreadyDispatched  ReconcileOutcome = "already_dispatched"
	OutcomeLocked             ReconcileOutcome = "locked"
	OutcomeDuplicatePrevented ReconcileOutcome = "duplicate_prevented"
	OutcomeNotApproved        ReconcileOutcome = "not_approved"
	OutcomePartialFailure     ReconcileOutcome = "partial_failure"
	OutcomeFailed             ReconcileOutcome = "failed"
)

// ReconcileResult summarizes one reconcile run.
type ReconcileResult struct {
	Outcome       ReconcileOutcome
	OrdersCreated int
	OrdersFailed  int
	OrdersSkipped int
	DuplicateOf   *uuid.UUID
}

// dispatchTarget is one provider order to place: a canonical link plus its
// share of the purchased quantity.
type dispatchTarget struct {
	link     string
	quantity int
}

// Reconciler is the single funnel between "payment approved" and "orders
// placed". Every trigger (webhook, poll job, sweep, admin reprocess) goes
// through Reconcile, which serializes work per transaction with a TTL lock
// and skips targets that already have a live order, so concurrent or
// repeated triggers collapse into at most one dispatch per target.
type Reconciler struct {
	transactions TransactionStore
	orders       OrderStore
	locks        LockStore
	jobs         QueueStore
	txLogs       TransactionLogStore
	provider     ProviderClient
	clock        clock.Clock
	logger       *slog.Logger

	cfg      config.ReconcileConfig
	bareCode bool
	delay    time.Duration
	holder   string

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration)
}

func NewReconciler(
	transactions TransactionStore,
	orders OrderStore,
	locks LockStore,
	jobs QueueStore,
	txLogs TransactionLogStore,
	providerClient ProviderClient,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.ReconcileConfig,
	providerCfg config.ProviderConfig,
) *Reconciler {
	return &Reconciler{
		transactions: transactions,
		orders:       orders,
		locks:        locks,
		jobs:         jobs,
		txLogs:       txLogs,
		provider:     providerClient,
		clock:        clk,
		logger:       logger,
		cfg:          cfg,
		bareCode:     providerCfg.BareCode,
		delay:        providerCfg.ItemDelay,
		holder:       "reconciler-" + uuid.NewString(),
		sleep:        sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Reconcile drives one transaction toward dispatched. Contention and
// guard-rail stops (not approved, already dispatched, lock held elsewhere,
// duplicate payment) are normal outcomes with a nil error; only
// infrastructure failures return an error.
func (r *Reconciler) Reconcile(ctx context.Context, transactionID uuid.UUID) (ReconcileResult, error) {
	tx, err := r.transactions.FindByID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ReconcileResult{}, errs.Mark(err, errs.ErrTransactionNotFound)
		}
		return ReconcileResult{}, err
	}

	if tx.PaymentStatus != transaction.PaymentApproved {
		return ReconcileResult{Outcome: OutcomeNotApproved}, nil
	}
	if tx.FulfillmentStatus == transaction.FulfillmentDispatched {
		return ReconcileResult{Outcome: OutcomeAlreadyDispatched}, nil
	}

	if res, stop, err := r.checkDuplicatePayment(ctx, tx); err != nil {
		return ReconcileResult{}, err
	} else if stop {
		return res, nil
	}

	acquired, err := r.locks.Acquire(ctx, tx.ID, r.holder, r.cfg.LockTTL)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !acquired {
		r.logger.Info("reconcile skipped, lock held elsewhere", "transaction_id", tx.ID)
		return ReconcileResult{Outcome: OutcomeLocked}, nil
	}
	defer func() {
		if err := r.locks.Release(context.WithoutCancel(ctx), tx.ID, r.holder); err != nil {
			r.logger.Warn("failed to release lock", "transaction_id", tx.ID, "error", err)
		}
	}()

	// Re-read under the lock: another holder may have finished between the
	// first read and acquisition.
	tx, err = r.transactions.FindByID(ctx, tx.ID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if tx.FulfillmentStatus == transaction.FulfillmentDispatched {
		return ReconcileResult{Outcome: OutcomeAlreadyDispatched}, nil
	}

	if err := r.transactions.IncrementAttempts(ctx, tx.ID); err != nil {
		return ReconcileResult{}, err
	}

	targets, res, stop, err := r.buildTargets(ctx, tx)
	if err != nil {
		return ReconcileResult{}, err
	}
	if stop {
		return res, nil
	}

	result, persistLost := r.dispatch(ctx, tx, targets)

	status := transaction.FulfillmentDispatched
	if result.OrdersFailed > 0 {
		status = transaction.FulfillmentError
	}
	if err := r.transactions.SetFulfillmentStatus(ctx, tx.ID, status); err != nil {
		return result, err
	}

	if persistLost {
		// The provider accepted an order we have no row for. Another
		// automated run could not see it and would submit again, so this
		// transaction goes to an operator instead.
		if err := r.transactions.MarkNeedsReview(ctx, tx.ID, "order row missing after provider accepted"); err != nil {
			r.logger.Error("failed to flag transaction for review", "transaction_id", tx.ID, "error", err)
		}
		r.logTx(ctx, tx.ID, "error", "provider accepted an order that could not be persisted", nil)
	}

	r.logTx(ctx, tx.ID, "info", "reconcile finished", map[string]any{
		"outcome": string(result.Outcome),
		"created": result.OrdersCreated,
		"failed":  result.OrdersFailed,
		"skipped": result.OrdersSkipped,
	})
	r.enqueueNotify(ctx, tx.ID, result.Outcome)
	return result, nil
}

// checkDuplicatePayment stops the run when a different transaction already
// dispatched for the same gateway payment. The newer row is flagged so it
// is never swept again.
func (r *Reconciler) checkDuplicatePayment(ctx context.Context, tx *transaction.Transaction) (ReconcileResult, bool, error) {
	if tx.PaymentID == nil || *tx.PaymentID == "" {
		return ReconcileResult{}, false, nil
	}
	sibling, err := r.transactions.FindDispatchedSibling(ctx, *tx.PaymentID, tx.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ReconcileResult{}, false, nil
		}
		return ReconcileResult{}, false, err
	}

	if err := r.transactions.MarkDuplicateOf(ctx, tx.ID, sibling.ID); err != nil {
		return ReconcileResult{}, false, err
	}
	r.logTx(ctx, tx.ID, "warn", "duplicate payment, already dispatched elsewhere", map[string]any{
		"payment_id":  *tx.PaymentID,
		"original_id": sibling.ID.String(),
	})
	return ReconcileResult{Outcome: OutcomeDuplicatePrevented, DuplicateOf: &sibling.ID}, true, nil
}

// buildTargets derives the provider targets for a transaction. Profile
// services yield a single profile link guarded by the recent-purchase
// window; post services yield one target per selected post, capped at the
// configured maximum, with the quantity split across them.
func (r *Reconciler) buildTargets(ctx context.Context, tx *transaction.Transaction) ([]dispatchTarget, ReconcileResult, bool, error) {
	if tx.ServiceType.IsProfileService() {
		if tx.TargetUsername == "" {
			r.logTx(ctx, tx.ID, "error", "profile service without username", nil)
			if err := r.transactions.SetFulfillmentStatus(ctx, tx.ID, transaction.FulfillmentError); err != nil {
				return nil, ReconcileResult{}, false, err
			}
			return nil, ReconcileResult{Outcome: OutcomeFailed}, true, nil
		}

		since := r.clock.Now().Add(-r.cfg.ProfileWindow)
		recent, err := r.orders.HasRecentProfileOrder(ctx, tx.TargetUsername, tx.ID, since)
		if err != nil {
			return nil, ReconcileResult{}, false, err
		}
		if recent {
			r.logTx(ctx, tx.ID, "warn", "recent order exists for same profile", map[string]any{
				"username": tx.TargetUsername,
			})
			return nil, ReconcileResult{Outcome: OutcomeDuplicatePrevented}, true, nil
		}
		return []dispatchTarget{{link: order.ProfileLink(tx.TargetUsername), quantity: tx.Quantity}}, ReconcileResult{}, false, nil
	}

	posts := tx.TargetPosts
	if len(posts) == 0 {
		r.logTx(ctx, tx.ID, "error", "no dispatch targets on transaction", nil)
		if err := r.transactions.SetFulfillmentStatus(ctx, tx.ID, transaction.FulfillmentError); err != nil {
			return nil, ReconcileResult{}, false, err
		}
		return nil, ReconcileResult{Outcome: OutcomeFailed}, true, nil
	}
	if len(posts) > r.cfg.MaxTargets {
		r.logTx(ctx, tx.ID, "warn", "target list truncated", map[string]any{
			"selected": len(posts),
			"max":      r.cfg.MaxTargets,
		})
		posts = posts[:r.cfg.MaxTargets]
	}

	quantities := order.SplitQuantity(tx.Quantity, len(posts))
	targets := make([]dispatchTarget, 0, len(posts))
	for i, p := range posts {
		targets = append(targets, dispatchTarget{
			link:     order.CanonicalPostLink(p.Link, p.Code, r.bareCode),
			quantity: quantities[i],
		})
	}
	return targets, ReconcileResult{}, false, nil
}

// dispatch places one provider order per target. Each target is guarded
// against replays twice: against persisted non-error orders, and against
// targets already handled earlier in this run. Failures are persisted as
// error orders and never abort the loop, so one bad target cannot starve
// the rest. The second return reports a sent order whose row could not be
// written, which the caller must take out of automated retries.
func (r *Reconciler) dispatch(ctx context.Context, tx *transaction.Transaction, targets []dispatchTarget) (ReconcileResult, bool) {
	var res ReconcileResult
	persistLost := false
	seen := make(map[string]struct{}, len(targets))

	for i, target := range targets {
		if i > 0 {
			r.sleep(ctx, r.delay)
		}

		if _, dup := seen[target.link]; dup {
			res.OrdersSkipped++
			continue
		}
		seen[target.link] = struct{}{}

		exists, err := r.orders.HasCountableOrder(ctx, tx.ID, target.link)
		if err != nil {
			res.OrdersFailed++
			r.logTx(ctx, tx.ID, "error", "order lookup failed", map[string]any{"link": target.link, "error": err.Error()})
			continue
		}
		if exists {
			res.OrdersSkipped++
			r.logTx(ctx, tx.ID, "info", "order already exists for target", map[string]any{"link": target.link})
			continue
		}

		o := order.NewPending(tx.ID, tx.ProviderServiceID, target.link, tx.TargetUsername, target.quantity)
		result, err := r.provider.CreateOrder(ctx, tx.ProviderServiceID, target.link, target.quantity)
		if err != nil {
			var raw json.RawMessage
			if result != nil {
				raw = result.Raw
			}
			o.MarkFailed(err.Error(), raw)
			res.OrdersFailed++
			level := "error"
			if cr.Is(err, errs.ErrProviderRejected) {
				level = "warn"
			}
			r.logTx(ctx, tx.ID, level, "provider order failed", map[string]any{"link": target.link, "error": err.Error()})
		} else {
			o.MarkSent(result.ExternalOrderID, result.Raw)
			res.OrdersCreated++
			r.logTx(ctx, tx.ID, "info", "provider order placed", map[string]any{
				"link":     target.link,
				"quantity": target.quantity,
				"order_id": result.ExternalOrderID,
			})
		}

		if err := r.orders.Create(ctx, o); err != nil {
			r.logger.Error("failed to persist order", "transaction_id", tx.ID, "link", target.link, "error", err)
			if err := r.orders.Create(ctx, o); err != nil {
				r.logger.Error("order persist retry failed", "transaction_id", tx.ID, "link", target.link, "error", err)
				// A lost error row just allows a retry. A lost sent row
				// breaks the replay guard.
				if o.Status == order.StatusProcessing {
					persistLost = true
				}
			}
		}
	}

	switch {
	case res.OrdersFailed == 0:
		res.Outcome = OutcomeDispatched
	case res.OrdersCreated > 0 || res.OrdersSkipped > 0:
		res.Outcome = OutcomePartialFailure
	default:
		res.Outcome = OutcomeFailed
	}
	return res, persistLost
}

func (r *Reconciler) enqueueNotify(ctx context.Context, transactionID uuid.UUID, outcome ReconcileOutcome) {
	payload, err := json.Marshal(map[string]string{
		"transaction_id": transactionID.String(),
		"outcome":        string(outcome),
	})
	if err != nil {
		return
	}
	job := &queue.Job{
		ID:            uuid.New(),
		Kind:          queue.KindNotifyDownstream,
		TransactionID: &transactionID,
		Payload:       payload,
		MaxAttempts:   3,
		RunAt:         r.clock.Now(),
	}
	if err := r.jobs.Enqueue(ctx, job); err != nil {
		r.logger.Warn("failed to enqueue notify job", "transaction_id", transactionID, "error", err)
	}
}

func (r *Reconciler) logTx(ctx context.Context, transactionID uuid.UUID, level, message string, metadata map[string]any) {
	if err := r.txLogs.Insert(ctx, transactionID, level, message, metadata); err != nil {
		r.logger.Warn("failed to write transaction log", "transaction_id", transactionID, "error", err)
	}
}
