package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/event"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/valueobject"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/money"
)

// CreatePaymentParams is the caller-supplied part of a payment. AmountMinor is nil when
// the request carried no amount or one that is not an integer.
type CreatePaymentParams struct {
	ExternalID             string
	DebtorIBAN             string
	CreditorIBAN           string
	Currency               string
	AmountMinor            *int64
	EndToEndID             string
	RequestedExecutionDate string
}

// Violations returns every rule the params break, in a fixed order.
func (p CreatePaymentParams) Violations() []string {
	var v []string
	if p.ExternalID == "" {
		v = append(v, ViolationExternalIDRequired)
	}
	if _, err := valueobject.NewIBAN(p.DebtorIBAN); err != nil {
		v = append(v, ViolationDebtorIBAN)
	}
	if _, err := valueobject.NewIBAN(p.CreditorIBAN); err != nil {
		v = append(v, ViolationCreditorIBAN)
	}
	if _, err := money.NewSupportedCurrency(p.Currency); err != nil {
		v = append(v, ViolationCurrency)
	}
	if p.AmountMinor == nil || *p.AmountMinor <= 0 {
		v = append(v, ViolationAmountMinor)
	}
	return v
}

// Payment is the root aggregate of the emulator. Identity, amount, correlation ids and
// scheduling are fixed at creation; only the status moves.
type Payment struct {
	id                       string
	externalID               string
	debtorIBAN               string
	creditorIBAN             string
	currency                 money.Currency
	amountMinor              int64
	endToEndID               string
	requestedExecutionDate   string
	status                   valueobject.PaymentStatus
	scheduledNextBusinessDay bool
	rejectReason             string
	createdAt                time.Time
	domainEvents             []events.DomainEvent
}

// NewPayment validates params and creates a payment in INITIATED status. All violations
// are reported together in a *ValidationError.
func NewPayment(params CreatePaymentParams, now time.Time, pastCutoff bool) (Payment, error) {
	if violations := params.Violations(); len(violations) > 0 {
		return Payment{}, &ValidationError{Details: violations}
	}

	currency, _ := money.NewSupportedCurrency(params.Currency)
	debtor, _ := valueobject.NewIBAN(params.DebtorIBAN)
	creditor, _ := valueobject.NewIBAN(params.CreditorIBAN)
	id := uuid.NewString()
	endToEndID := params.EndToEndID
	if endToEndID == "" {
		endToEndID = uuid.NewString()
	}
	executionDate := params.RequestedExecutionDate
	if executionDate == "" {
		executionDate = valueobject.ExecutionDateFor(now)
	}

	p := Payment{
		id:                       id,
		externalID:               params.ExternalID,
		debtorIBAN:               debtor.String(),
		creditorIBAN:             creditor.String(),
		currency:                 currency,
		amountMinor:              *params.AmountMinor,
		endToEndID:               endToEndID,
		requestedExecutionDate:   executionDate,
		status:                   valueobject.PaymentStatusInitiated,
		scheduledNextBusinessDay: pastCutoff,
		createdAt:                now,
	}
	p.domainEvents = append(p.domainEvents,
		event.NewPaymentInitiated(id, p.externalID, endToEndID, p.amountMinor, p.currency.Code(), pastCutoff, now),
	)
	return p, nil
}

// Reconstruct recreates a Payment from stored or fixture state (no validation, no events).
func Reconstruct(
	id, externalID, debtorIBAN, creditorIBAN string,
	currency money.Currency,
	amountMinor int64,
	endToEndID, requestedExecutionDate string,
	status valueobject.PaymentStatus,
	scheduledNextBusinessDay bool,
	createdAt time.Time,
) Payment {
	return Payment{
		id:                       id,
		externalID:               externalID,
		debtorIBAN:               debtorIBAN,
		creditorIBAN:             creditorIBAN,
		currency:                 currency,
		amountMinor:              amountMinor,
		endToEndID:               endToEndID,
		requestedExecutionDate:   requestedExecutionDate,
		status:                   status,
		scheduledNextBusinessDay: scheduledNextBusinessDay,
		createdAt:                createdAt,
	}
}

// MarkPending transitions the payment from INITIATED to PENDING (immutable - returns new copy).
func (p Payment) MarkPending(now time.Time) (Payment, error) {
	if p.status != valueobject.PaymentStatusInitiated {
		return Payment{}, fmt.Errorf("%w: can only mark pending from INITIATED status, current: %s",
			ErrInvalidTransition, p.status.String())
	}

	updated := p.withStatus(valueobject.PaymentStatusPending)
	updated.domainEvents = append(updated.domainEvents, event.NewPaymentPending(p.id, p.endToEndID, now))
	return updated, nil
}

// Reject transitions the payment from INITIATED or PENDING to REJECTED (immutable - returns new copy).
func (p Payment) Reject(reason string, now time.Time) (Payment, error) {
	if !p.status.CanTransitionTo(valueobject.PaymentStatusRejected) {
		return Payment{}, fmt.Errorf("%w: cannot reject from %s status",
			ErrInvalidTransition, p.status.String())
	}

	updated := p.withStatus(valueobject.PaymentStatusRejected)
	updated.rejectReason = reason
	updated.domainEvents = append(updated.domainEvents,
		event.NewPaymentRejected(p.id, p.endToEndID, p.status.String(), reason, now),
	)
	return updated, nil
}

func (p Payment) withStatus(status valueobject.PaymentStatus) Payment {
	updated := p
	updated.status = status
	updated.domainEvents = append([]events.DomainEvent{}, p.domainEvents...)
	return updated
}

// Accessors

func (p Payment) ID() string { return p.id }
func (p Payment) ExternalID() string { return p.externalID }
func (p Payment) DebtorIBAN() string { return p.debtorIBAN }
func (p Payment) CreditorIBAN() string { return p.creditorIBAN }
func (p Payment) Currency() money.Currency { return p.currency }
func (p Payment) AmountMinor() int64 { return p.amountMinor }
func (p Payment) Amount() money.Money { return money.FromMinor(p.amountMinor, p.currency) }
func (p Payment) EndToEndID() string { return p.endToEndID }
func (p Payment) RequestedExecutionDate() string { return p.requestedExecutionDate }
func (p Payment) Status() valueobject.PaymentStatus { return p.status }
func (p Payment) ScheduledNextBusinessDay() bool { return p.scheduledNextBusinessDay }
func (p Payment) RejectReason() string { return p.rejectReason }
func (p Payment) CreatedAt() time.Time { return p.createdAt }
func (p Payment) DomainEvents() []events.DomainEvent { return p.domainEvents }

// ClearDomainEvents returns a copy with no pending events.
func (p Payment) ClearDomainEvents() Payment {
	updated := p
	updated.domainEvents = nil
	return updated
}
