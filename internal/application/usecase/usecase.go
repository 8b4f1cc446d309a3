package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
)

const (
	// TopicPaymentLifecycle is the default topic lifecycle events are published on.
	TopicPaymentLifecycle = "paymock.payment.lifecycle"
	// DefaultPublishTimeout bounds one publish when no timeout is configured.
	DefaultPublishTimeout = 2 * time.Second
)

var tracer = otel.Tracer("github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/usecase")

// Clock returns the current time in the location payments are booked in.
type Clock func() time.Time

// EventEmitter publishes domain events on one topic. Publishing is a side channel:
// each publish is cut off after timeout, and failures are logged and never reach the
// caller.
type EventEmitter struct {
	publisher port.EventPublisher
	topic     string
	timeout   time.Duration
	logger    *slog.Logger
}

func NewEventEmitter(publisher port.EventPublisher, topic string, timeout time.Duration, logger *slog.Logger) *EventEmitter {
	if topic == "" {
		topic = TopicPaymentLifecycle
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &EventEmitter{publisher: publisher, topic: topic, timeout: timeout, logger: logger}
}

func (e *EventEmitter) Emit(ctx context.Context, evts []events.DomainEvent) {
	if len(evts) == 0 {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	if err := e.publisher.Publish(pubCtx, e.topic, evts...); err != nil {
		e.logger.WarnContext(ctx, "failed to publish events",
			"topic", e.topic,
			"count", len(evts),
			"error", err,
		)
	}
}
