package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
	StatusCancelled  Status = "cancelled"
)

// Order is one fulfillment request sent to a provider for part of a
// Transaction. Failed attempts are persisted with StatusError and never
// discarded, so operators can remediate manually.
type Order struct {
	ID               uuid.UUID
	TransactionID    uuid.UUID
	ProviderID       string
	ExternalOrderID  *string
	TargetLink       string
	TargetUsername   string
	Quantity         int
	Status           Status
	ProviderResponse json.RawMessage
	ErrorDetail      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewPending(transactionID uuid.UUID, providerID, targetLink, username string, quantity int) *Order {
	return &Order{
		ID:             uuid.New(),
		TransactionID:  transactionID,
		ProviderID:     providerID,
		TargetLink:     targetLink,
		TargetUsername: username,
		Quantity:       quantity,
		Status:         StatusPending,
	}
}

func (o *Order) MarkSent(externalOrderID string, raw json.RawMessage) {
	o.ExternalOrderID = &externalOrderID
	o.Status = StatusProcessing
	o.ProviderResponse = raw
}

func (o *Order) MarkFailed(detail string, raw json.RawMessage) {
	o.Status = StatusError
	o.ErrorDetail = &detail
	o.ProviderResponse = raw
}

// Countable reports whether this order blocks a re-dispatch for its
// target link. Error rows do not count: the sweep may retry them.
func (o *Order) Countable() bool {
	return o.Status != StatusError
}
