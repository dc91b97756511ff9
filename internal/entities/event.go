package entities

// WebhookEvent is the inbound platform payload. Only the fields the
// pipeline reads are decoded; anything else in the body is ignored.
type WebhookEvent struct {
	Object string       `json:"object"`
	Entry  []EventEntry `json:"entry"`
}

// EventEntry groups the messaging events delivered for one page.
type EventEntry struct {
	ID        string           `json:"id"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single sender action. Message is nil for
// non-message events (delivery receipts, postbacks, reactions).
type MessagingEvent struct {
	Sender  EventSender   `json:"sender"`
	Message *EventMessage `json:"message,omitempty"`
}

type EventSender struct {
	ID string `json:"id"`
}

type EventMessage struct {
	Text string `json:"text"`
}

// Text returns the message text, or "" when this is not a text message.
func (m MessagingEvent) Text() string {
	if m.Message == nil {
		return ""
	}
	return m.Message.Text
}
