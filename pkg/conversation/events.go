package conversation

import "github.com/google/uuid"

type EventType string

const (
	EventStageChanged    EventType = "stage_changed"
	EventMessageAppended EventType = "message_appended"
	EventBusyChanged     EventType = "busy_changed"
	EventQuizUpdated     EventType = "quiz_updated"
)

// Event notifies the transport layer that the conversation changed and
// a re-render is due. Watchdog-initiated transitions reach the client
// only through this channel.
type Event struct {
	Type           EventType `json:"type"`
	ConversationId uuid.UUID `json:"conversation_id"`
	Stage          string    `json:"stage"`
	Busy           bool      `json:"busy"`
	Exchange       *Exchange `json:"exchange,omitempty"`
}

// Listener receives events while the machine lock is held. It must not
// call back into the machine.
type Listener func(Event)
