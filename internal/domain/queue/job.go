package queue

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindPollPaymentStatus   Kind = "poll_payment_status"
	KindDispatchTransaction Kind = "dispatch_transaction"
	KindNotifyDownstream    Kind = "notify_downstream"
)

// Job is one unit of deferred work. Delivery is at-least-once: a claimed
// job becomes invisible for a lease period and is reclaimable if the
// worker dies, so handlers must be idempotent.
type Job struct {
	ID             uuid.UUID
	Kind           Kind
	TransactionID  *uuid.UUID
	Payload        json.RawMessage
	Priority       int
	Attempts       int
	MaxAttempts    int
	RunAt          time.Time
	LeasedBy       *string
	LeaseExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FailedJob is the durable record of a job that exhausted its attempts.
type FailedJob struct {
	ID            uuid.UUID
	JobID         uuid.UUID
	Kind          Kind
	TransactionID *uuid.UUID
	Payload       json.RawMessage
	Attempts      int
	LastError     string
	FailedAt      time.Time
}

// Exhausted reports whether another failure would push the job past its
// attempt budget.
func (j *Job) Exhausted() bool {
	return j.Attempts >= j.MaxAttempts
}

// PaymentPollOffsets are the delays, relative to payment creation, at
// which the gateway is polled for settlement. They cover the gateway's
// typical settlement window.
var PaymentPollOffsets = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
}
