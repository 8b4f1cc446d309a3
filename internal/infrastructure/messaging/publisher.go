package messaging

import (
	"context"
	"fmt"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
	pkgkafka "github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/kafka"
)

var _ port.EventPublisher = (*Publisher)(nil)

// MessageProducer is the subset of the Kafka producer the publisher needs.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// Publisher implements EventPublisher using Kafka. Messages are keyed by payment id so
// every lifecycle event of one payment lands on the same partition.
type Publisher struct {
	producer MessageProducer
}

func NewPublisher(producer MessageProducer) *Publisher {
	return &Publisher{producer: producer}
}

func (p *Publisher) Publish(ctx context.Context, topic string, domainEvents ...events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}
	messages := make([]pkgkafka.Message, 0, len(domainEvents))
	for _, evt := range domainEvents {
		payload, err := events.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
				"event_id":       evt.EventID().String(),
			},
		})
	}
	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}
