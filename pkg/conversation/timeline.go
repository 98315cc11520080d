package conversation

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Exchange is one timeline entry. QuestionId links an entry to the
// persisted question record it was stored under (nil when persistence
// was unavailable or failed).
type Exchange struct {
	Id         uuid.UUID
	Role       Role
	Text       string
	CreatedAt  time.Time
	QuestionId *uuid.UUID
}

// Timeline is the append-only ordered log of exchanges. Insertion order
// is the only order; timestamps are informational.
type Timeline struct {
	entries []Exchange
}

func (t *Timeline) Append(e Exchange) {
	t.entries = append(t.entries, e)
}

func (t *Timeline) Len() int {
	return len(t.entries)
}

// Snapshot returns a copy safe to hand outside the owning machine.
func (t *Timeline) Snapshot() []Exchange {
	out := make([]Exchange, len(t.entries))
	copy(out, t.entries)
	return out
}
