package repository

import (
	"context"
	"encoding/json"

	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/infra/db"
	"fulfillment-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(q db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: q}
}

const transactionColumns = `
	id, payment_id, payment_external_reference, amount_cents, currency,
	payment_status, fulfillment_status, service_type, provider_service_id,
	target_username, target_posts, quantity, customer_name, customer_email,
	metadata, attempts, created_at, updated_at`

func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var (
		t        transaction.Transaction
		posts    []byte
		metadata []byte
	)
	err := row.Scan(
		&t.ID, &t.PaymentID, &t.ExternalReference, &t.AmountCents, &t.Currency,
		&t.PaymentStatus, &t.FulfillmentStatus, &t.ServiceType, &t.ProviderServiceID,
		&t.TargetUsername, &posts, &t.Quantity, &t.CustomerName, &t.CustomerEmail,
		&metadata, &t.Attempts, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(posts, &t.TargetPosts); err != nil {
		return nil, errs.Wrap(err, "failed to decode target posts")
	}
	if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
		return nil, errs.Wrap(err, "failed to decode metadata")
	}
	return &t, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}
	return t, nil
}

// FindByPaymentRef matches a gateway payment identifier against either the
// stored payment ID or the external reference set at checkout.
func (r *TransactionRepository) FindByPaymentRef(ctx context.Context, ref string) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE payment_id = $1 OR payment_external_reference = $1
		ORDER BY created_at DESC
		LIMIT 1`, ref)
	t, err := scanTransaction(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found for payment ref", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by payment ref", err)
	}
	return t, nil
}

// FindByMetadataPaymentID matches a payment that was stamped into the
// checkout metadata but never made it into the payment_id column. Some
// gateway notifications only carry that embedded identifier.
func (r *TransactionRepository) FindByMetadataPaymentID(ctx context.Context, paymentID string) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE metadata->'payment'->>'id' = $1
		ORDER BY created_at DESC
		LIMIT 1`, paymentID)
	t, err := scanTransaction(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found for metadata payment id", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by metadata payment id", err)
	}
	return t, nil
}

// FindDispatchedSibling looks for a different transaction that already
// dispatched for the same gateway payment. Used to stop double fulfillment
// when the gateway re-notifies under a new transaction row.
func (r *TransactionRepository) FindDispatchedSibling(ctx context.Context, paymentID string, excludeID uuid.UUID) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE payment_id = $1 AND id <> $2 AND fulfillment_status = 'dispatched'
		LIMIT 1`, paymentID, excludeID)
	t, err := scanTransaction(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no dispatched sibling", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dispatched sibling", err)
	}
	return t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	posts, err := json.Marshal(t.TargetPosts)
	if err != nil {
		return errs.Wrap(err, "failed to encode target posts")
	}
	metadata, err := json.Marshal(t.Metadata)
	if err != nil {
		return errs.Wrap(err, "failed to encode metadata")
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO transactions (
			id, payment_id, payment_external_reference, amount_cents, currency,
			payment_status, fulfillment_status, service_type, provider_service_id,
			target_username, target_posts, quantity, customer_name, customer_email,
			metadata, attempts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		t.ID, t.PaymentID, t.ExternalReference, t.AmountCents, t.Currency,
		t.PaymentStatus, t.FulfillmentStatus, t.ServiceType, t.ProviderServiceID,
		t.TargetUsername, posts, t.Quantity, t.CustomerName, t.CustomerEmail,
		metadata, t.Attempts,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

// UpdateFromGateway overwrites the payment fields with what the gateway
// reported. The gateway detail endpoint is the source of truth, so this
// always writes even when the status moves backwards.
func (r *TransactionRepository) UpdateFromGateway(ctx context.Context, id uuid.UUID, paymentID string, status transaction.PaymentStatus, payerName, payerEmail string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE transactions
		SET payment_id = $2,
		    payment_status = $3,
		    customer_name = CASE WHEN $4 <> '' THEN $4 ELSE customer_name END,
		    customer_email = CASE WHEN $5 <> '' THEN $5 ELSE customer_email END,
		    updated_at = now()
		WHERE id = $1`,
		id, paymentID, status, payerName, payerEmail,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update transaction from gateway", err)
	}
	return nil
}

func (r *TransactionRepository) SetFulfillmentStatus(ctx context.Context, id uuid.UUID, status transaction.FulfillmentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE transactions SET fulfillment_status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set fulfillment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkDuplicateOf flags the transaction as superseded by one that already
// dispatched for the same payment. Recorded in metadata so the audit trail
// keeps the linkage.
func (r *TransactionRepository) MarkDuplicateOf(ctx context.Context, id, originalID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE transactions
		SET metadata = metadata || jsonb_build_object('duplicate_of', $2::text),
		    updated_at = now()
		WHERE id = $1`,
		id, originalID.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark transaction duplicate", err)
	}
	return nil
}

// MarkNeedsReview pulls the transaction out of the sweep until an operator
// has looked at it. Used when automated retries could double-fulfill, for
// example when the provider accepted an order but the order row was lost.
func (r *TransactionRepository) MarkNeedsReview(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE transactions
		SET metadata = metadata || jsonb_build_object('needs_review', $2::text),
		    updated_at = now()
		WHERE id = $1`,
		id, reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark transaction for review", err)
	}
	return nil
}

func (r *TransactionRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE transactions SET attempts = attempts + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment attempts", err)
	}
	return nil
}

// ListDispatchable returns approved, not-yet-dispatched transactions under
// the attempt ceiling, oldest first. The sweep scheduler feeds on this.
func (r *TransactionRepository) ListDispatchable(ctx context.Context, attemptCeiling, limit int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE payment_status = 'approved'
		  AND fulfillment_status <> 'dispatched'
		  AND attempts < $1
		  AND NOT (metadata ? 'duplicate_of')
		  AND NOT (metadata ? 'needs_review')
		ORDER BY created_at ASC
		LIMIT $2`, attemptCeiling, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dispatchable transactions", err)
	}
	defer rows.Close()

	var out []*transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan dispatchable transaction", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dispatchable transactions", err)
	}
	return out, nil
}

// ListStalled returns approved, undispatched transactions the sweep no
// longer touches: at the attempt ceiling or flagged for review. These need
// an operator.
func (r *TransactionRepository) ListStalled(ctx context.Context, attemptCeiling, limit int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE payment_status = 'approved'
		  AND fulfillment_status <> 'dispatched'
		  AND NOT (metadata ? 'duplicate_of')
		  AND (attempts >= $1 OR metadata ? 'needs_review')
		ORDER BY created_at ASC
		LIMIT $2`, attemptCeiling, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stalled transactions", err)
	}
	defer rows.Close()

	var out []*transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan stalled transaction", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stalled transactions", err)
	}
	return out, nil
}
