package webhook

import (
	"time"

	"github.com/google/uuid"
)

// Processing outcomes recorded on the webhook log.
const (
	OutcomeProcessed          = "processed"
	OutcomeUnmatched          = "unmatched"
	OutcomeSynthesized        = "synthesized"
	OutcomeDuplicatePrevented = "duplicate_prevented"
	OutcomeRejectedSignature  = "rejected_signature"
	OutcomeInvalidBody        = "invalid_body"
	OutcomeNoPaymentID        = "no_payment_id"
	OutcomeInternalError      = "internal_error"
)

// LogEntry is the immutable record of one raw inbound event. Entries are
// written for every delivery, matched or not, and never mutated.
type LogEntry struct {
	ID               uuid.UUID
	RawBody          string
	SignatureHeader  string
	SignatureOutcome SignatureOutcome
	PaymentID        *string
	Strategy         *string
	TransactionID    *uuid.UUID
	Outcome          string
	CreatedAt        time.Time
}
