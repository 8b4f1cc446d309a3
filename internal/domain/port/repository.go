package port

import (
	"context"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
)

// PaymentStore is the single source of truth for payment state.
type PaymentStore interface {
	// Save inserts a new payment. It returns model.ErrDuplicateEndToEndID when the
	// end-to-end id is already held, even if an earlier lookup found it free.
	Save(ctx context.Context, payment model.Payment) error
	// FindByID returns model.ErrPaymentNotFound when no payment has the id.
	FindByID(ctx context.Context, id string) (model.Payment, error)
	// FindByEndToEndID returns model.ErrPaymentNotFound when the end-to-end id is unused.
	FindByEndToEndID(ctx context.Context, endToEndID string) (model.Payment, error)
	// List returns every payment ordered by creation time, then id.
	List(ctx context.Context) ([]model.Payment, error)
	// Update applies fn to the current payment and stores the result atomically, so fn
	// sees the status as of the write. An error from fn leaves the payment unchanged.
	Update(ctx context.Context, id string, fn func(model.Payment) (model.Payment, error)) (model.Payment, error)
	// Reset removes every payment.
	Reset(ctx context.Context) error
}

// IdempotencyLedger binds idempotency tokens to the payment they produced.
type IdempotencyLedger interface {
	// Lookup returns the payment id bound to token, if any.
	Lookup(ctx context.Context, token string) (string, bool, error)
	// Record binds token to paymentID. Callers check Lookup first.
	Record(ctx context.Context, token, paymentID string) error
	// Reset removes every binding.
	Reset(ctx context.Context) error
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}

// TransitionScheduler defers the INITIATED -> PENDING move of a payment.
type TransitionScheduler interface {
	Schedule(paymentID string)
}

// MetricsRecorder counts lifecycle and rendering activity.
type MetricsRecorder interface {
	PaymentCreated(ctx context.Context, currency string)
	IdempotentReplay(ctx context.Context)
	ValidationFailed(ctx context.Context)
	StatusTransition(ctx context.Context, to string)
	MessageRendered(ctx context.Context, kind string)
}
