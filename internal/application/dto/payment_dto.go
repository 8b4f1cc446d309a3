package dto

import (
	"time"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
)

// timestampLayout is ISO-8601 UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CreatePaymentRequest is the input DTO for creating a payment. AmountMinor is nil when
// the caller sent no amount or a non-integer one.
type CreatePaymentRequest struct {
	IdempotencyKey         string
	ExternalID             string
	DebtorIBAN             string
	CreditorIBAN           string
	Currency               string
	AmountMinor            *int64
	EndToEndID             string
	RequestedExecutionDate string
}

// Params converts the request into domain creation parameters.
func (r CreatePaymentRequest) Params() model.CreatePaymentParams {
	return model.CreatePaymentParams{
		ExternalID:             r.ExternalID,
		DebtorIBAN:             r.DebtorIBAN,
		CreditorIBAN:           r.CreditorIBAN,
		Currency:               r.Currency,
		AmountMinor:            r.AmountMinor,
		EndToEndID:             r.EndToEndID,
		RequestedExecutionDate: r.RequestedExecutionDate,
	}
}

// CreatePaymentResponse is the output DTO of a creation. Replayed is set when the
// idempotency key was already bound and no new payment was created.
type CreatePaymentResponse struct {
	Payment  Payment
	Replayed bool
}

// Payment is the wire shape of a payment. Field names are part of the external contract.
type Payment struct {
	ID                       string `json:"id"`
	ExternalID               string `json:"externalId"`
	DebtorIBAN               string `json:"debtorIban"`
	CreditorIBAN             string `json:"creditorIban"`
	Currency                 string `json:"currency"`
	AmountMinor              int64  `json:"amountMinor"`
	EndToEndID               string `json:"endToEndId"`
	RequestedExecutionDate   string `json:"requestedExecutionDate"`
	Status                   string `json:"status"`
	ScheduledNextBusinessDay bool   `json:"scheduledNextBusinessDay"`
	CreatedAt                string `json:"createdAt"`
}

// FromModel maps a domain payment to its wire shape.
func FromModel(p model.Payment) Payment {
	return Payment{
		ID:                       p.ID(),
		ExternalID:               p.ExternalID(),
		DebtorIBAN:               p.DebtorIBAN(),
		CreditorIBAN:             p.CreditorIBAN(),
		Currency:                 p.Currency().Code(),
		AmountMinor:              p.AmountMinor(),
		EndToEndID:               p.EndToEndID(),
		RequestedExecutionDate:   p.RequestedExecutionDate(),
		Status:                   p.Status().String(),
		ScheduledNextBusinessDay: p.ScheduledNextBusinessDay(),
		CreatedAt:                FormatTimestamp(p.CreatedAt()),
	}
}

// FormatTimestamp renders t the way every payment timestamp is exposed.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// RejectPaymentRequest is the input DTO for injecting a rejection.
type RejectPaymentRequest struct {
	PaymentID string
	Reason    string
}

// Document is a rendered ISO 20022 message.
type Document struct {
	Kind        string
	ContentType string
	Body        []byte
}
