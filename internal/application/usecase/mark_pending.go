package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/valueobject"
)

// MarkPending is the deferred INITIATED -> PENDING transition. The status check and the
// write happen inside one store update, so a payment rejected in the meantime keeps its
// REJECTED status.
type MarkPending struct {
	store   port.PaymentStore
	emitter *EventEmitter
	metrics port.MetricsRecorder
	clock   Clock
	logger  *slog.Logger
}

func NewMarkPending(store port.PaymentStore, emitter *EventEmitter, metrics port.MetricsRecorder, clock Clock, logger *slog.Logger) *MarkPending {
	return &MarkPending{
		store:   store,
		emitter: emitter,
		metrics: metrics,
		clock:   clock,
		logger:  logger,
	}
}

// Execute moves the payment to PENDING if it is still INITIATED. A payment that left
// INITIATED or no longer exists is skipped without error.
func (uc *MarkPending) Execute(ctx context.Context, paymentID string) error {
	ctx, span := tracer.Start(ctx, "MarkPending",
		trace.WithNewRoot(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("paymock.payment_id", paymentID)),
	)
	defer span.End()

	updated, err := uc.store.Update(ctx, paymentID, func(p model.Payment) (model.Payment, error) {
		return p.MarkPending(uc.clock())
	})
	switch {
	case errors.Is(err, model.ErrInvalidTransition), errors.Is(err, model.ErrPaymentNotFound):
		uc.logger.DebugContext(ctx, "pending transition skipped", "payment_id", paymentID, "reason", err.Error())
		return nil
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to mark payment %s pending: %w", paymentID, err)
	}

	uc.metrics.StatusTransition(ctx, valueobject.PaymentStatusPending.String())
	uc.logger.DebugContext(ctx, "payment pending", "payment_id", paymentID)
	uc.emitter.Emit(ctx, updated.DomainEvents())
	return nil
}

// Fire adapts Execute to the scheduler callback, logging instead of returning errors.
func (uc *MarkPending) Fire(ctx context.Context, paymentID string) {
	if err := uc.Execute(ctx, paymentID); err != nil {
		uc.logger.ErrorContext(ctx, "deferred transition failed", "payment_id", paymentID, "error", err)
	}
}
