package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/iso20022"
)

// RenderStatement projects every stored payment into one camt.053 statement.
type RenderStatement struct {
	store   port.PaymentStore
	metrics port.MetricsRecorder
	clock   Clock
}

func NewRenderStatement(store port.PaymentStore, metrics port.MetricsRecorder, clock Clock) *RenderStatement {
	return &RenderStatement{store: store, metrics: metrics, clock: clock}
}

func (uc *RenderStatement) Execute(ctx context.Context) (dto.Document, error) {
	ctx, span := tracer.Start(ctx, "RenderStatement")
	defer span.End()

	payments, err := uc.store.List(ctx)
	if err != nil {
		return dto.Document{}, fmt.Errorf("failed to list payments: %w", err)
	}
	span.SetAttributes(attribute.Int("paymock.entries", len(payments)))

	txs := make([]iso20022.Transaction, 0, len(payments))
	for _, p := range payments {
		txs = append(txs, toTransaction(p))
	}

	body, err := iso20022.NewBankToCustomerStatement(txs, uc.clock(), uuid.NewString()).ToXML()
	if err != nil {
		return dto.Document{}, fmt.Errorf("failed to render statement: %w", err)
	}

	uc.metrics.MessageRendered(ctx, iso20022.Camt053.String())
	return dto.Document{Kind: iso20022.Camt053.String(), ContentType: iso20022.ContentType, Body: body}, nil
}
