package event

import (
	"encoding/json"
	"time"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
)

const AggregateTypePayment = "Payment"

// Event types published on the lifecycle topic.
const (
	TypePaymentInitiated = "payment.initiated"
	TypePaymentPending   = "payment.pending"
	TypePaymentRejected  = "payment.rejected"
)

// PaymentInitiated is emitted when a new payment is accepted.
type PaymentInitiated struct {
	events.BaseEvent
	PaymentID                string `json:"payment_id"`
	ExternalID               string `json:"external_id"`
	EndToEndID               string `json:"end_to_end_id"`
	AmountMinor              int64  `json:"amount_minor"`
	Currency                 string `json:"currency"`
	ScheduledNextBusinessDay bool   `json:"scheduled_next_business_day"`
}

func NewPaymentInitiated(paymentID, externalID, endToEndID string, amountMinor int64, currency string, nextBusinessDay bool, at time.Time) PaymentInitiated {
	payload, _ := json.Marshal(struct {
		PaymentID                string `json:"payment_id"`
		ExternalID               string `json:"external_id"`
		EndToEndID               string `json:"end_to_end_id"`
		AmountMinor              int64  `json:"amount_minor"`
		Currency                 string `json:"currency"`
		ScheduledNextBusinessDay bool   `json:"scheduled_next_business_day"`
	}{paymentID, externalID, endToEndID, amountMinor, currency, nextBusinessDay})

	return PaymentInitiated{
		BaseEvent:                events.NewBaseEvent(TypePaymentInitiated, paymentID, AggregateTypePayment, at, payload),
		PaymentID:                paymentID,
		ExternalID:               externalID,
		EndToEndID:               endToEndID,
		AmountMinor:              amountMinor,
		Currency:                 currency,
		ScheduledNextBusinessDay: nextBusinessDay,
	}
}

// PaymentPending is emitted when the deferred transition moves a payment to PENDING.
type PaymentPending struct {
	events.BaseEvent
	PaymentID  string `json:"payment_id"`
	EndToEndID string `json:"end_to_end_id"`
}

func NewPaymentPending(paymentID, endToEndID string, at time.Time) PaymentPending {
	payload, _ := json.Marshal(struct {
		PaymentID  string `json:"payment_id"`
		EndToEndID string `json:"end_to_end_id"`
	}{paymentID, endToEndID})

	return PaymentPending{
		BaseEvent:  events.NewBaseEvent(TypePaymentPending, paymentID, AggregateTypePayment, at, payload),
		PaymentID:  paymentID,
		EndToEndID: endToEndID,
	}
}

// PaymentRejected is emitted when a payment is rejected by an external actor.
type PaymentRejected struct {
	events.BaseEvent
	PaymentID      string `json:"payment_id"`
	EndToEndID     string `json:"end_to_end_id"`
	PreviousStatus string `json:"previous_status"`
	Reason         string `json:"reason,omitempty"`
}

func NewPaymentRejected(paymentID, endToEndID, previousStatus, reason string, at time.Time) PaymentRejected {
	payload, _ := json.Marshal(struct {
		PaymentID      string `json:"payment_id"`
		EndToEndID     string `json:"end_to_end_id"`
		PreviousStatus string `json:"previous_status"`
		Reason         string `json:"reason,omitempty"`
	}{paymentID, endToEndID, previousStatus, reason})

	return PaymentRejected{
		BaseEvent:      events.NewBaseEvent(TypePaymentRejected, paymentID, AggregateTypePayment, at, payload),
		PaymentID:      paymentID,
		EndToEndID:     endToEndID,
		PreviousStatus: previousStatus,
		Reason:         reason,
	}
}
