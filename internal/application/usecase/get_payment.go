package usecase

import (
	"context"
	"fmt"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
)

// GetPayment retrieves a single payment.
type GetPayment struct {
	store port.PaymentStore
}

func NewGetPayment(store port.PaymentStore) *GetPayment {
	return &GetPayment{store: store}
}

// Execute returns an error wrapping model.ErrPaymentNotFound for unknown ids.
func (uc *GetPayment) Execute(ctx context.Context, paymentID string) (dto.Payment, error) {
	ctx, span := tracer.Start(ctx, "GetPayment")
	defer span.End()

	payment, err := uc.store.FindByID(ctx, paymentID)
	if err != nil {
		return dto.Payment{}, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return dto.FromModel(payment), nil
}
