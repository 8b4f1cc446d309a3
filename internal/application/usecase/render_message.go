package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/iso20022"
)

// RenderMessage projects one payment into a single-payment ISO 20022 document.
type RenderMessage struct {
	store   port.PaymentStore
	metrics port.MetricsRecorder
	clock   Clock
}

func NewRenderMessage(store port.PaymentStore, metrics port.MetricsRecorder, clock Clock) *RenderMessage {
	return &RenderMessage{store: store, metrics: metrics, clock: clock}
}

func (uc *RenderMessage) Execute(ctx context.Context, paymentID string, kind iso20022.MessageType) (dto.Document, error) {
	ctx, span := tracer.Start(ctx, "RenderMessage")
	defer span.End()
	span.SetAttributes(attribute.String("paymock.message_kind", kind.String()))

	payment, err := uc.store.FindByID(ctx, paymentID)
	if err != nil {
		return dto.Document{}, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}

	msg, err := iso20022.ForTransaction(kind, toTransaction(payment), uc.clock())
	if err != nil {
		return dto.Document{}, err
	}
	body, err := msg.ToXML()
	if err != nil {
		return dto.Document{}, fmt.Errorf("failed to render %s: %w", kind, err)
	}

	uc.metrics.MessageRendered(ctx, kind.String())
	return dto.Document{Kind: kind.String(), ContentType: iso20022.ContentType, Body: body}, nil
}
