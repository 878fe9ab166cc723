package transaction

import (
	"time"

	"fulfillment-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errs.New("amount must be positive")
	ErrMissingService = errs.New("provider service id required")
)

// TargetPost is one post/reel selected at checkout.
type TargetPost struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Link string `json:"link"`
}

// Transaction is one purchase attempt tracked end-to-end. External payment
// identifiers (gateway payment ID, external reference) all resolve to the
// same row; rows are never deleted so terminal states stay auditable.
type Transaction struct {
	ID                uuid.UUID
	PaymentID         *string
	ExternalReference *string
	AmountCents       int64
	Currency          string
	PaymentStatus     PaymentStatus
	FulfillmentStatus FulfillmentStatus
	ServiceType       ServiceType
	ProviderServiceID string
	TargetUsername    string
	TargetPosts       []TargetPost
	Quantity          int
	CustomerName      string
	CustomerEmail     string
	Metadata          map[string]any
	Attempts          int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func New(amountCents int64, currency string, serviceType ServiceType, providerServiceID, username string, quantity int) (*Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if providerServiceID == "" {
		return nil, ErrMissingService
	}
	return &Transaction{
		ID:                uuid.New(),
		AmountCents:       amountCents,
		Currency:          currency,
		PaymentStatus:     PaymentPending,
		FulfillmentStatus: FulfillmentNotDispatched,
		ServiceType:       serviceType,
		ProviderServiceID: providerServiceID,
		TargetUsername:    username,
		Quantity:          quantity,
		Metadata:          map[string]any{},
	}, nil
}

// Dispatchable reports whether the transaction is in the state the
// reconcile path acts on: payment approved, fulfillment still pending or
// previously failed.
func (t *Transaction) Dispatchable() bool {
	return t.PaymentStatus == PaymentApproved && t.FulfillmentStatus != FulfillmentDispatched
}
