package response

import (
	"encoding/json"
	"time"

	"fulfillment-core/internal/domain/lock"
	"fulfillment-core/internal/domain/order"
	"fulfillment-core/internal/domain/queue"
	"fulfillment-core/internal/domain/transaction"
	"fulfillment-core/internal/domain/webhook"
	"fulfillment-core/internal/usecase"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ReconcileResponse struct {
	Outcome       string  `json:"outcome"`
	OrdersCreated int     `json:"orders_created"`
	OrdersFailed  int     `json:"orders_failed"`
	OrdersSkipped int     `json:"orders_skipped"`
	DuplicateOf   *string `json:"duplicate_of,omitempty"`
}

func NewReconcileResponse(r usecase.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{
		Outcome:       string(r.Outcome),
		OrdersCreated: r.OrdersCreated,
		OrdersFailed:  r.OrdersFailed,
		OrdersSkipped: r.OrdersSkipped,
	}
	if r.DuplicateOf != nil {
		s := r.DuplicateOf.String()
		resp.DuplicateOf = &s
	}
	return resp
}

type TransactionResponse struct {
	ID                string    `json:"id"`
	PaymentID         *string   `json:"payment_id,omitempty"`
	ExternalReference *string   `json:"external_reference,omitempty"`
	AmountCents       int64     `json:"amount_cents"`
	Currency          string    `json:"currency"`
	PaymentStatus     string    `json:"payment_status"`
	FulfillmentStatus string    `json:"fulfillment_status"`
	ServiceType       string    `json:"service_type"`
	TargetUsername    string    `json:"target_username,omitempty"`
	Quantity          int       `json:"quantity"`
	Attempts          int       `json:"attempts"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type OrderResponse struct {
	ID              string    `json:"id"`
	ExternalOrderID *string   `json:"external_order_id,omitempty"`
	TargetLink      string    `json:"target_link"`
	Quantity        int       `json:"quantity"`
	Status          string    `json:"status"`
	ErrorDetail     *string   `json:"error_detail,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type TransactionLogResponse struct {
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type TransactionDetailResponse struct {
	Transaction TransactionResponse      `json:"transaction"`
	Orders      []OrderResponse          `json:"orders"`
	Logs        []TransactionLogResponse `json:"logs"`
}

func NewTransactionDetailResponse(d *usecase.TransactionDetail) TransactionDetailResponse {
	resp := TransactionDetailResponse{
		Transaction: newTransactionResponse(d.Transaction),
		Orders:      make([]OrderResponse, 0, len(d.Orders)),
		Logs:        make([]TransactionLogResponse, 0, len(d.Logs)),
	}
	for _, o := range d.Orders {
		resp.Orders = append(resp.Orders, newOrderResponse(o))
	}
	for _, l := range d.Logs {
		resp.Logs = append(resp.Logs, TransactionLogResponse{
			Level:     l.Level,
			Message:   l.Message,
			Metadata:  l.Metadata,
			CreatedAt: l.CreatedAt,
		})
	}
	return resp
}

func NewTransactionResponses(txs []*transaction.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, newTransactionResponse(t))
	}
	return out
}

func newTransactionResponse(t *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID.String(),
		PaymentID:         t.PaymentID,
		ExternalReference: t.ExternalReference,
		AmountCents:       t.AmountCents,
		Currency:          t.Currency,
		PaymentStatus:     string(t.PaymentStatus),
		FulfillmentStatus: string(t.FulfillmentStatus),
		ServiceType:       string(t.ServiceType),
		TargetUsername:    t.TargetUsername,
		Quantity:          t.Quantity,
		Attempts:          t.Attempts,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID.String(),
		ExternalOrderID: o.ExternalOrderID,
		TargetLink:      o.TargetLink,
		Quantity:        o.Quantity,
		Status:          string(o.Status),
		ErrorDetail:     o.ErrorDetail,
		CreatedAt:       o.CreatedAt,
	}
}

type LockResponse struct {
	TransactionID string    `json:"transaction_id"`
	Holder        string    `json:"holder"`
	AcquiredAt    time.Time `json:"acquired_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func NewLockResponses(locks []lock.Lock) []LockResponse {
	out := make([]LockResponse, 0, len(locks))
	for _, l := range locks {
		out = append(out, LockResponse{
			TransactionID: l.TransactionID.String(),
			Holder:        l.Holder,
			AcquiredAt:    l.AcquiredAt,
			ExpiresAt:     l.ExpiresAt,
		})
	}
	return out
}

type QueueFailureResponse struct {
	ID            string          `json:"id"`
	JobID         string          `json:"job_id"`
	Kind          string          `json:"kind"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	Attempts      int             `json:"attempts"`
	LastError     string          `json:"last_error"`
	FailedAt      time.Time       `json:"failed_at"`
}

func NewQueueFailureResponses(failures []queue.FailedJob) []QueueFailureResponse {
	out := make([]QueueFailureResponse, 0, len(failures))
	for _, f := range failures {
		r := QueueFailureResponse{
			ID:        f.ID.String(),
			JobID:     f.JobID.String(),
			Kind:      string(f.Kind),
			Payload:   f.Payload,
			Attempts:  f.Attempts,
			LastError: f.LastError,
			FailedAt:  f.FailedAt,
		}
		if f.TransactionID != nil {
			s := f.TransactionID.String()
			r.TransactionID = &s
		}
		out = append(out, r)
	}
	return out
}

type WebhookLogResponse struct {
	ID               string    `json:"id"`
	SignatureOutcome string    `json:"signature_outcome"`
	PaymentID        *string   `json:"payment_id,omitempty"`
	Strategy         *string   `json:"strategy,omitempty"`
	TransactionID    *string   `json:"transaction_id,omitempty"`
	Outcome          string    `json:"outcome"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewWebhookLogResponses(entries []webhook.LogEntry) []WebhookLogResponse {
	out := make([]WebhookLogResponse, 0, len(entries))
	for _, e := range entries {
		r := WebhookLogResponse{
			ID:               e.ID.String(),
			SignatureOutcome: string(e.SignatureOutcome),
			PaymentID:        e.PaymentID,
			Strategy:         e.Strategy,
			Outcome:          e.Outcome,
			CreatedAt:        e.CreatedAt,
		}
		if e.TransactionID != nil {
			s := e.TransactionID.String()
			r.TransactionID = &s
		}
		out = append(out, r)
	}
	return out
}
