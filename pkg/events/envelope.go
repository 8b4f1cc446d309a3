package events

import (
	"encoding/json"
	"time"
)

// Envelope is the wire representation of a DomainEvent. BaseEvent keeps its fields
// unexported, so brokers publish envelopes rather than events.
type Envelope struct {
	ID            string          `json:"id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope wraps event for serialization.
func NewEnvelope(event DomainEvent) Envelope {
	return Envelope{
		ID:            event.EventID().String(),
		EventType:     event.EventType(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		OccurredAt:    event.OccurredAt(),
		Payload:       json.RawMessage(event.Payload()),
	}
}

// Marshal encodes the envelope of event as JSON.
func Marshal(event DomainEvent) ([]byte, error) {
	return json.Marshal(NewEnvelope(event))
}
