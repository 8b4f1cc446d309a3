package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
)

const meterName = "github.com/mmljay/corporate-payments-ba-qa-portfolio"

var _ port.MetricsRecorder = (*Recorder)(nil)

// Recorder implements MetricsRecorder with OpenTelemetry counters.
type Recorder struct {
	created     metric.Int64Counter
	replays     metric.Int64Counter
	validations metric.Int64Counter
	transitions metric.Int64Counter
	rendered    metric.Int64Counter
}

// NewRecorder registers the payment counters on provider.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	meter := provider.Meter(meterName)

	var (
		r   Recorder
		err error
	)
	if r.created, err = meter.Int64Counter("paymock_payments_created",
		metric.WithDescription("Payments accepted by the initiation endpoint")); err != nil {
		return nil, fmt.Errorf("create payments counter: %w", err)
	}
	if r.replays, err = meter.Int64Counter("paymock_idempotent_replays",
		metric.WithDescription("Creation requests answered from the idempotency ledger")); err != nil {
		return nil, fmt.Errorf("create replay counter: %w", err)
	}
	if r.validations, err = meter.Int64Counter("paymock_validation_failures",
		metric.WithDescription("Creation requests rejected by validation")); err != nil {
		return nil, fmt.Errorf("create validation counter: %w", err)
	}
	if r.transitions, err = meter.Int64Counter("paymock_status_transitions",
		metric.WithDescription("Payment status transitions by target status")); err != nil {
		return nil, fmt.Errorf("create transition counter: %w", err)
	}
	if r.rendered, err = meter.Int64Counter("paymock_messages_rendered",
		metric.WithDescription("ISO 20022 documents rendered by message kind")); err != nil {
		return nil, fmt.Errorf("create rendered counter: %w", err)
	}
	return &r, nil
}

func (r *Recorder) PaymentCreated(ctx context.Context, currency string) {
	r.created.Add(ctx, 1, metric.WithAttributes(attribute.String("currency", currency)))
}

func (r *Recorder) IdempotentReplay(ctx context.Context) {
	r.replays.Add(ctx, 1)
}

func (r *Recorder) ValidationFailed(ctx context.Context) {
	r.validations.Add(ctx, 1)
}

func (r *Recorder) StatusTransition(ctx context.Context, to string) {
	r.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("to", to)))
}

func (r *Recorder) MessageRendered(ctx context.Context, kind string) {
	r.rendered.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
