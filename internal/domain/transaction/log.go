package transaction

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is one audit event attached to a transaction. The admin audit
// view is built from these rows.
type LogEntry struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	Level         string
	Message       string
	Metadata      map[string]any
	CreatedAt     time.Time
}
