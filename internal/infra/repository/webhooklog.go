package repository

import (
	"context"

	"fulfillment-core/internal/domain/webhook"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/db"
)

type WebhookLogRepository struct {
	db db.DBTX
}

func NewWebhookLogRepository(q db.DBTX) *WebhookLogRepository {
	return &WebhookLogRepository{db: q}
}

func (r *WebhookLogRepository) Insert(ctx context.Context, e *webhook.LogEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO webhook_logs (id, raw_body, signature_header, signature_outcome, payment_id, strategy, transaction_id, outcome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.RawBody, e.SignatureHeader, e.SignatureOutcome, e.PaymentID, e.Strategy, e.TransactionID, e.Outcome,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert webhook log", err)
	}
	return nil
}

func (r *WebhookLogRepository) ListRecent(ctx context.Context, limit int) ([]webhook.LogEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, raw_body, signature_header, signature_outcome, payment_id, strategy, transaction_id, outcome, created_at
		FROM webhook_logs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook logs", err)
	}
	defer rows.Close()

	var out []webhook.LogEntry
	for rows.Next() {
		var e webhook.LogEntry
		if err := rows.Scan(&e.ID, &e.RawBody, &e.SignatureHeader, &e.SignatureOutcome, &e.PaymentID, &e.Strategy, &e.TransactionID, &e.Outcome, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook log", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook logs", err)
	}
	return out, nil
}
