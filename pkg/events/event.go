package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a state change of one aggregate, published after the change is stored.
// Aggregate ids are opaque strings so stores can use any identifier scheme.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
	Payload() []byte
}

// BaseEvent is embedded by concrete events; the payload is pre-serialized JSON.
type BaseEvent struct {
	id            uuid.UUID
	eventType     string
	aggregateID   string
	aggregateType string
	occurredAt    time.Time
	payload       []byte
}

// NewBaseEvent stamps the event with a fresh id. occurredAt comes from the caller's
// clock and is normalized to UTC.
func NewBaseEvent(eventType, aggregateID, aggregateType string, occurredAt time.Time, payload []byte) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    occurredAt.UTC(),
		payload:       payload,
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.id }
func (e BaseEvent) EventType() string     { return e.eventType }
func (e BaseEvent) AggregateID() string   { return e.aggregateID }
func (e BaseEvent) AggregateType() string { return e.aggregateType }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
func (e BaseEvent) Payload() []byte       { return e.payload }
