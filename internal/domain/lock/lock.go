package lock

import (
	"time"

	"github.com/google/uuid"
)

// Lock is an exclusive, time-bounded claim on a transaction. At most one
// unexpired lock exists per transaction ID; a crashed holder's lock
// becomes acquirable again once the TTL passes.
type Lock struct {
	TransactionID uuid.UUID
	Holder        string
	AcquiredAt    time.Time
	ExpiresAt     time.Time
}

func (l Lock) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
