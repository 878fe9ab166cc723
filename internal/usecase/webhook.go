package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/domain/webhook"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/gateway"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

// WebhookProcessor handles raw gateway notifications. It never fails the
// delivery: every path ends in a webhook log row and a silent return, so
// the HTTP layer can acknowledge unconditionally and the gateway never
// enters a retry storm against us.
type WebhookProcessor struct {
	transactions TransactionStore
	webhookLogs  WebhookLogStore
	txLogs       TransactionLogStore
	jobs         QueueStore
	gateway      PaymentGateway
	reconciler   *Reconciler
	clock        clock.Clock
	logger       *slog.Logger
	cfg          config.GatewayConfig
	queueCfg     config.QueueConfig
}

func NewWebhookProcessor(
	transactions TransactionStore,
	webhookLogs WebhookLogStore,
	txLogs TransactionLogStore,
	jobs QueueStore,
	paymentGateway PaymentGateway,
	reconciler *Reconciler,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.GatewayConfig,
	queueCfg config.QueueConfig,
) *WebhookProcessor {
	return &WebhookProcessor{
		transactions: transactions,
		webhookLogs:  webhookLogs,
		txLogs:       txLogs,
		jobs:         jobs,
		gateway:      paymentGateway,
		reconciler:   reconciler,
		clock:        clk,
		logger:       logger,
		cfg:          cfg,
		queueCfg:     queueCfg,
	}
}

// Process runs the full intake pipeline for one delivery: signature check,
// payment-ID extraction, gateway detail fetch, transaction resolution,
// status overwrite, then a synchronous reconcile when the payment is
// approved. The webhook body itself is never trusted for state decisions.
func (p *WebhookProcessor) Process(ctx context.Context, body []byte, signatureHeader string) {
	entry := &webhook.LogEntry{
		ID:              uuid.New(),
		RawBody:         string(body),
		SignatureHeader: signatureHeader,
		Outcome:         webhook.OutcomeInternalError,
	}
	defer func() {
		if err := p.webhookLogs.Insert(context.WithoutCancel(ctx), entry); err != nil {
			p.logger.Error("failed to persist webhook log", "error", err)
		}
	}()

	outcome, template := webhook.VerifySignature(signatureHeader, p.cfg.WebhookSecret, body)
	entry.SignatureOutcome = outcome
	if outcome != webhook.SignatureValid {
		p.logger.Warn("webhook signature not verified", "outcome", outcome, "template", template)
		if p.cfg.SignatureStrict && outcome != webhook.SignatureUnconfigured {
			entry.Outcome = webhook.OutcomeRejectedSignature
			return
		}
	}

	extraction, ok := webhook.ExtractPaymentID(body)
	if !ok {
		entry.Outcome = webhook.OutcomeNoPaymentID
		p.logger.Warn("no payment id in webhook body")
		return
	}
	entry.PaymentID = &extraction.PaymentID
	entry.Strategy = &extraction.Strategy

	payment, err := p.gateway.GetPayment(ctx, extraction.PaymentID)
	if err != nil {
		// The gateway will settle eventually; fall back to polling.
		p.logger.Error("gateway payment fetch failed", "payment_id", extraction.PaymentID, "error", err)
		p.schedulePolls(ctx, extraction.PaymentID, nil)
		return
	}

	tx, err := p.resolveTransaction(ctx, payment)
	if err != nil {
		p.logger.Error("transaction resolution failed", "payment_id", payment.ID, "error", err)
		return
	}
	if tx == nil {
		entry.Outcome = webhook.OutcomeUnmatched
		if p.cfg.SynthesizeUnmatched {
			tx, err = p.synthesize(ctx, payment)
			if err != nil {
				p.logger.Warn("could not synthesize transaction", "payment_id", payment.ID, "error", err)
				return
			}
			entry.Outcome = webhook.OutcomeSynthesized
		} else {
			p.logger.Warn("webhook matched no transaction", "payment_id", payment.ID)
			return
		}
	}
	entry.TransactionID = &tx.ID

	status := transaction.MapGatewayStatus(payment.Status)
	if err := p.transactions.UpdateFromGateway(ctx, tx.ID, payment.ID, status, payment.PayerName, payment.PayerEmail); err != nil {
		p.logger.Error("failed to update transaction from gateway", "transaction_id", tx.ID, "error", err)
		return
	}

	switch status {
	case transaction.PaymentApproved:
		result, err := p.reconciler.Reconcile(ctx, tx.ID)
		if err != nil {
			p.logger.Error("reconcile failed", "transaction_id", tx.ID, "error", err)
			return
		}
		p.logger.Info("webhook reconciled", "transaction_id", tx.ID, "outcome", result.Outcome)
	case transaction.PaymentPending:
		p.schedulePolls(ctx, payment.ID, &tx.ID)
	}
	if entry.Outcome != webhook.OutcomeSynthesized {
		entry.Outcome = webhook.OutcomeProcessed
	}
}

func (p *WebhookProcessor) resolveTransaction(ctx context.Context, payment *gateway.Payment) (*transaction.Transaction, error) {
	tx, err := p.transactions.FindByPaymentRef(ctx, payment.ID)
	if err == nil {
		return tx, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if payment.ExternalReference != "" {
		tx, err = p.transactions.FindByPaymentRef(ctx, payment.ExternalReference)
		if err == nil {
			return tx, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}
	// Checkout stamps the payment into metadata before the gateway columns
	// are filled, so a first notification can only match there.
	tx, err = p.transactions.FindByMetadataPaymentID(ctx, payment.ID)
	if err == nil {
		return tx, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	return nil, nil
}

// synthesize creates a transaction row from the gateway payment's checkout
// metadata when no row matched. Only possible when checkout stamped the
// provider service into the payment.
func (p *WebhookProcessor) synthesize(ctx context.Context, payment *gateway.Payment) (*transaction.Transaction, error) {
	meta := payment.Metadata
	serviceID, _ := meta["provider_service_id"].(string)
	username, _ := meta["username"].(string)
	serviceType, _ := meta["service_type"].(string)
	quantity := 0
	if q, ok := meta["quantity"].(float64); ok {
		quantity = int(q)
	}

	tx, err := transaction.New(payment.AmountCents, "BRL", transaction.ServiceType(serviceType), serviceID, username, quantity)
	if err != nil {
		return nil, err
	}
	tx.PaymentID = ptr.To(payment.ID)
	if payment.ExternalReference != "" {
		tx.ExternalReference = ptr.To(payment.ExternalReference)
	}
	tx.CustomerName = payment.PayerName
	tx.CustomerEmail = payment.PayerEmail
	tx.Metadata["synthesized"] = true

	if posts, ok := meta["posts"].([]any); ok {
		for _, raw := range posts {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			post := transaction.TargetPost{}
			post.ID, _ = m["id"].(string)
			post.Code, _ = m["code"].(string)
			post.Link, _ = m["link"].(string)
			tx.TargetPosts = append(tx.TargetPosts, post)
		}
	}

	if err := p.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	p.logger.Info("synthesized transaction from gateway payment", "transaction_id", tx.ID, "payment_id", payment.ID)
	return tx, nil
}

// schedulePolls enqueues gateway polls at fixed offsets so a payment that
// settles after the webhook is still picked up. Redelivered webhooks must
// not stack another round of polls, so the payment is checked for pending
// poll jobs first.
func (p *WebhookProcessor) schedulePolls(ctx context.Context, paymentID string, transactionID *uuid.UUID) {
	scheduled, err := p.jobs.HasScheduledPoll(ctx, paymentID)
	if err != nil {
		// Scheduling twice is recoverable, not scheduling at all is not.
		p.logger.Warn("could not check for scheduled polls", "payment_id", paymentID, "error", err)
	}
	if scheduled {
		p.logger.Info("polls already scheduled", "payment_id", paymentID)
		return
	}

	now := p.clock.Now()
	for _, offset := range queue.PaymentPollOffsets {
		payload, err := json.Marshal(map[string]string{"payment_id": paymentID})
		if err != nil {
			return
		}
		job := &queue.Job{
			ID:            uuid.New(),
			Kind:          queue.KindPollPaymentStatus,
			TransactionID: transactionID,
			Payload:       payload,
			MaxAttempts:   p.queueCfg.MaxAttempts,
			RunAt:         now.Add(offset),
		}
		if err := p.jobs.Enqueue(ctx, job); err != nil {
			p.logger.Warn("failed to enqueue poll job", "payment_id", paymentID, "error", err)
			return
		}
	}
	p.logger.Info("scheduled payment polls", "payment_id", paymentID, "count", len(queue.PaymentPollOffsets))
}
