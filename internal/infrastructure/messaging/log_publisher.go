package messaging

import (
	"context"
	"log/slog"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
)

var _ port.EventPublisher = (*LogPublisher)(nil)

// LogPublisher writes events to the logger. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		p.logger.InfoContext(ctx, "domain event",
			"topic", topic,
			"event_type", evt.EventType(),
			"event_id", evt.EventID().String(),
			"aggregate_id", evt.AggregateID(),
			"occurred_at", evt.OccurredAt(),
		)
	}
	return nil
}
