package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/service"
)

// CreatePayment handles idempotent payment creation.
type CreatePayment struct {
	store     port.PaymentStore
	ledger    port.IdempotencyLedger
	scheduler port.TransitionScheduler
	emitter   *EventEmitter
	metrics   port.MetricsRecorder
	cutoff    service.CutoffPolicy
	clock     Clock
	logger    *slog.Logger
}

func NewCreatePayment(
	store port.PaymentStore,
	ledger port.IdempotencyLedger,
	scheduler port.TransitionScheduler,
	emitter *EventEmitter,
	metrics port.MetricsRecorder,
	cutoff service.CutoffPolicy,
	clock Clock,
	logger *slog.Logger,
) *CreatePayment {
	return &CreatePayment{
		store:     store,
		ledger:    ledger,
		scheduler: scheduler,
		emitter:   emitter,
		metrics:   metrics,
		cutoff:    cutoff,
		clock:     clock,
		logger:    logger,
	}
}

// Execute creates a payment, or returns the payment already bound to the idempotency
// key without looking at the rest of the request.
func (uc *CreatePayment) Execute(ctx context.Context, req dto.CreatePaymentRequest) (dto.CreatePaymentResponse, error) {
	ctx, span := tracer.Start(ctx, "CreatePayment")
	defer span.End()

	if req.IdempotencyKey == "" {
		return dto.CreatePaymentResponse{}, model.ErrMissingIdempotencyKey
	}

	existing, ok, err := uc.replay(ctx, req.IdempotencyKey)
	if err != nil {
		return dto.CreatePaymentResponse{}, err
	}
	if ok {
		span.SetAttributes(attribute.Bool("paymock.replayed", true), attribute.String("paymock.payment_id", existing.ID()))
		uc.metrics.IdempotentReplay(ctx)
		uc.logger.InfoContext(ctx, "idempotent replay", "payment_id", existing.ID())
		return dto.CreatePaymentResponse{Payment: dto.FromModel(existing), Replayed: true}, nil
	}

	params := req.Params()
	violations := params.Violations()
	if params.EndToEndID != "" {
		taken, err := uc.endToEndIDTaken(ctx, params.EndToEndID)
		if err != nil {
			return dto.CreatePaymentResponse{}, err
		}
		if taken {
			violations = append(violations, model.ViolationEndToEndDuplicate)
		}
	}
	if len(violations) > 0 {
		return dto.CreatePaymentResponse{}, uc.rejectInvalid(ctx, violations)
	}

	now := uc.clock()
	payment, err := model.NewPayment(params, now, uc.cutoff.IsPastCutoff(now))
	if err != nil {
		return dto.CreatePaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	// A concurrent create can claim the end-to-end id between the check above and the save.
	err = uc.store.Save(ctx, payment)
	if errors.Is(err, model.ErrDuplicateEndToEndID) {
		return dto.CreatePaymentResponse{}, uc.rejectInvalid(ctx, []string{model.ViolationEndToEndDuplicate})
	}
	if err != nil {
		return dto.CreatePaymentResponse{}, fmt.Errorf("failed to save payment: %w", err)
	}
	if err := uc.ledger.Record(ctx, req.IdempotencyKey, payment.ID()); err != nil {
		return dto.CreatePaymentResponse{}, fmt.Errorf("failed to record idempotency key: %w", err)
	}
	uc.scheduler.Schedule(payment.ID())

	span.SetAttributes(attribute.String("paymock.payment_id", payment.ID()))
	uc.metrics.PaymentCreated(ctx, payment.Currency().Code())
	uc.logger.InfoContext(ctx, "payment created",
		"payment_id", payment.ID(),
		"end_to_end_id", payment.EndToEndID(),
		"amount", payment.Amount().String(),
		"next_business_day", payment.ScheduledNextBusinessDay(),
	)
	uc.emitter.Emit(ctx, payment.DomainEvents())

	return dto.CreatePaymentResponse{Payment: dto.FromModel(payment)}, nil
}

func (uc *CreatePayment) rejectInvalid(ctx context.Context, violations []string) error {
	uc.metrics.ValidationFailed(ctx)
	uc.logger.InfoContext(ctx, "payment validation failed", "violations", violations)
	return &model.ValidationError{Details: violations}
}

// replay returns the payment bound to key. A key whose payment is gone (a reset raced
// the lookup) is treated as unbound.
func (uc *CreatePayment) replay(ctx context.Context, key string) (model.Payment, bool, error) {
	id, ok, err := uc.ledger.Lookup(ctx, key)
	if err != nil {
		return model.Payment{}, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}
	if !ok {
		return model.Payment{}, false, nil
	}
	payment, err := uc.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrPaymentNotFound) {
		return model.Payment{}, false, nil
	}
	if err != nil {
		return model.Payment{}, false, fmt.Errorf("failed to load replayed payment: %w", err)
	}
	return payment, true, nil
}

func (uc *CreatePayment) endToEndIDTaken(ctx context.Context, endToEndID string) (bool, error) {
	_, err := uc.store.FindByEndToEndID(ctx, endToEndID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, model.ErrPaymentNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check end-to-end id: %w", err)
	}
}
