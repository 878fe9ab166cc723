package repository

import (
	"context"
	"encoding/json"

	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/db"
	"fulfillment-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type TransactionLogRepository struct {
	db db.DBTX
}

func NewTransactionLogRepository(q db.DBTX) *TransactionLogRepository {
	return &TransactionLogRepository{db: q}
}

func (r *TransactionLogRepository) Insert(ctx context.Context, transactionID uuid.UUID, level, message string, metadata map[string]any) error {
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return errs.Wrap(err, "failed to encode log metadata")
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO transaction_logs (id, transaction_id, level, message, metadata)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), transactionID, level, message, raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert transaction log", err)
	}
	return nil
}

func (r *TransactionLogRepository) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]transaction.LogEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, transaction_id, level, message, metadata, created_at
		FROM transaction_logs
		WHERE transaction_id = $1
		ORDER BY created_at ASC`, transactionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transaction logs", err)
	}
	defer rows.Close()

	var out []transaction.LogEntry
	for rows.Next() {
		var (
			e   transaction.LogEntry
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.Level, &e.Message, &raw, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction log", err)
		}
		if err := json.Unmarshal(raw, &e.Metadata); err != nil {
			return nil, infra.WrapRepoErr("failed to decode log metadata", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction logs", err)
	}
	return out, nil
}
