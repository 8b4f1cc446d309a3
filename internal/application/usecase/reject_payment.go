package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/valueobject"
)

// RejectPayment injects an external rejection for test setups.
type RejectPayment struct {
	store   port.PaymentStore
	emitter *EventEmitter
	metrics port.MetricsRecorder
	clock   Clock
	logger  *slog.Logger
}

func NewRejectPayment(store port.PaymentStore, emitter *EventEmitter, metrics port.MetricsRecorder, clock Clock, logger *slog.Logger) *RejectPayment {
	return &RejectPayment{
		store:   store,
		emitter: emitter,
		metrics: metrics,
		clock:   clock,
		logger:  logger,
	}
}

// Execute moves an INITIATED or PENDING payment to REJECTED. Errors wrap
// model.ErrPaymentNotFound or model.ErrInvalidTransition.
func (uc *RejectPayment) Execute(ctx context.Context, req dto.RejectPaymentRequest) (dto.Payment, error) {
	ctx, span := tracer.Start(ctx, "RejectPayment")
	defer span.End()

	updated, err := uc.store.Update(ctx, req.PaymentID, func(p model.Payment) (model.Payment, error) {
		return p.Reject(req.Reason, uc.clock())
	})
	if err != nil {
		return dto.Payment{}, fmt.Errorf("failed to reject payment %s: %w", req.PaymentID, err)
	}

	uc.metrics.StatusTransition(ctx, valueobject.PaymentStatusRejected.String())
	uc.logger.InfoContext(ctx, "payment rejected", "payment_id", updated.ID(), "reason", updated.RejectReason())
	uc.emitter.Emit(ctx, updated.DomainEvents())
	return dto.FromModel(updated), nil
}
