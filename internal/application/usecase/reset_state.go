package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
)

// ResetState clears every payment and idempotency binding.
type ResetState struct {
	store  port.PaymentStore
	ledger port.IdempotencyLedger
	logger *slog.Logger
}

func NewResetState(store port.PaymentStore, ledger port.IdempotencyLedger, logger *slog.Logger) *ResetState {
	return &ResetState{store: store, ledger: ledger, logger: logger}
}

// Execute clears the ledger before the store, so a concurrent creation never sees a
// binding whose payment is already gone. Deferred transitions still armed for cleared
// payments find nothing and do nothing.
func (uc *ResetState) Execute(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ResetState")
	defer span.End()

	if err := uc.ledger.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset idempotency ledger: %w", err)
	}
	if err := uc.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset payment store: %w", err)
	}
	uc.logger.InfoContext(ctx, "state reset")
	return nil
}
