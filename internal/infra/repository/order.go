package repository

import (
	"context"
	"time"

	"fulfillment-core/internal/domain/order"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(q db.DBTX) *OrderRepository {
	return &OrderRepository{db: q}
}

const orderColumns = `
	id, transaction_id, provider_id, external_order_id, target_link,
	target_username, quantity, status, provider_response, error_detail,
	created_at, updated_at`

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.TransactionID, &o.ProviderID, &o.ExternalOrderID, &o.TargetLink,
		&o.TargetUsername, &o.Quantity, &o.Status, &o.ProviderResponse, &o.ErrorDetail,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (
			id, transaction_id, provider_id, external_order_id, target_link,
			target_username, quantity, status, provider_response, error_detail
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.TransactionID, o.ProviderID, o.ExternalOrderID, o.TargetLink,
		o.TargetUsername, o.Quantity, o.Status, o.ProviderResponse, o.ErrorDetail,
	)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("order references missing transaction", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE transaction_id = $1
		ORDER BY created_at ASC`, transactionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var out []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return out, nil
}

// HasCountableOrder reports whether a non-error order already exists for
// this transaction and link. Error rows do not count so failed targets can
// be retried.
func (r *OrderRepository) HasCountableOrder(ctx context.Context, transactionID uuid.UUID, targetLink string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE transaction_id = $1 AND target_link = $2 AND status <> 'error'
		)`, transactionID, targetLink).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing order", err)
	}
	return exists, nil
}

// HasRecentProfileOrder reports whether another transaction placed a
// non-error order against the same username since the cutoff. Guards
// profile services against rapid double purchases.
func (r *OrderRepository) HasRecentProfileOrder(ctx context.Context, username string, excludeTransaction uuid.UUID, since time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE target_username = $1
			  AND transaction_id <> $2
			  AND status <> 'error'
			  AND created_at >= $3
		)`, username, excludeTransaction, since).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check recent profile order", err)
	}
	return exists, nil
}
