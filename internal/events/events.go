package events

import "context"

// Streams
const (
	StreamPartnerships = "events:partnerships"
	StreamMessages     = "events:messages"
	StreamReminders    = "events:reminders"
)

// Event types
const (
	EventRequestCreated  = "partnership_request_created"
	EventRequestApproved = "partnership_request_approved"
	EventRequestDenied   = "partnership_request_denied"
	EventMessageSent     = "message_sent"
	EventTaskDueSoon     = "task_due_soon"
)

// Event is the payload carried over the pub/sub bus. UserID addresses the
// recipient; an empty UserID means broadcast.
type Event struct {
	Type    string         `json:"type"`
	UserID  string         `json:"user_id,omitempty"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
