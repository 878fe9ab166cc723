package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/notify"
	"fulfillment-core/internal/pkg/errs"
	"fulfillment-core/internal/usecase"

	"github.com/google/uuid"
)

// Handlers binds each job kind to its execution logic.
type Handlers struct {
	transactions usecase.TransactionStore
	gateway      usecase.PaymentGateway
	reconciler   *usecase.Reconciler
	publisher    usecase.EventPublisher
	logger       *slog.Logger
}

func NewHandlers(
	transactions usecase.TransactionStore,
	paymentGateway usecase.PaymentGateway,
	reconciler *usecase.Reconciler,
	publisher usecase.EventPublisher,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		transactions: transactions,
		gateway:      paymentGateway,
		reconciler:   reconciler,
		publisher:    publisher,
		logger:       logger,
	}
}

func (h *Handlers) RegisterAll(w *Worker) {
	w.Register(queue.KindPollPaymentStatus, h.PollPaymentStatus)
	w.Register(queue.KindDispatchTransaction, h.DispatchTransaction)
	w.Register(queue.KindNotifyDownstream, h.NotifyDownstream)
}

type pollPayload struct {
	PaymentID string `json:"payment_id"`
}

// PollPaymentStatus re-fetches a payment from the gateway and reconciles
// the matching transaction if it settled. A payment that still has no
// transaction is done, not an error: the remaining scheduled polls will
// look again.
func (h *Handlers) PollPaymentStatus(ctx context.Context, j *queue.Job) error {
	var payload pollPayload
	if err := json.Unmarshal(j.Payload, &payload); err != nil {
		return errs.Wrap(err, "invalid poll payload")
	}

	payment, err := h.gateway.GetPayment(ctx, payload.PaymentID)
	if err != nil {
		return err
	}

	tx, err := h.transactions.FindByPaymentRef(ctx, payment.ID)
	if err != nil && infra.IsKind(err, infra.KindNotFound) && payment.ExternalReference != "" {
		tx, err = h.transactions.FindByPaymentRef(ctx, payment.ExternalReference)
	}
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		tx, err = h.transactions.FindByMetadataPaymentID(ctx, payment.ID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			h.logger.Info("poll found no transaction", "payment_id", payment.ID)
			return nil
		}
		return err
	}

	status := transaction.MapGatewayStatus(payment.Status)
	if err := h.transactions.UpdateFromGateway(ctx, tx.ID, payment.ID, status, payment.PayerName, payment.PayerEmail); err != nil {
		return err
	}
	if status != transaction.PaymentApproved {
		return nil
	}

	result, err := h.reconciler.Reconcile(ctx, tx.ID)
	if err != nil {
		return err
	}
	h.logger.Info("poll reconciled", "transaction_id", tx.ID, "outcome", result.Outcome)
	return nil
}

// DispatchTransaction reconciles one transaction referenced by the job.
// Used by the sweep, which finds approved-but-undispatched rows in bulk.
func (h *Handlers) DispatchTransaction(ctx context.Context, j *queue.Job) error {
	if j.TransactionID == nil {
		return errs.New("dispatch job missing transaction id")
	}
	result, err := h.reconciler.Reconcile(ctx, *j.TransactionID)
	if err != nil {
		return err
	}
	h.logger.Info("dispatch job reconciled", "transaction_id", *j.TransactionID, "outcome", result.Outcome)
	return nil
}

type notifyPayload struct {
	TransactionID string `json:"transaction_id"`
	Outcome       string `json:"outcome"`
}

func (h *Handlers) NotifyDownstream(ctx context.Context, j *queue.Job) error {
	var payload notifyPayload
	if err := json.Unmarshal(j.Payload, &payload); err != nil {
		return errs.Wrap(err, "invalid notify payload")
	}
	if _, err := uuid.Parse(payload.TransactionID); err != nil {
		return errs.Wrap(err, "invalid transaction id in notify payload")
	}
	return h.publisher.Publish(ctx, notify.Event{
		TransactionID: payload.TransactionID,
		Outcome:       payload.Outcome,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
}
