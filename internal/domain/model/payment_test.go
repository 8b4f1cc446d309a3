package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/event"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/valueobject"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/money"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/testutil"
)

func amount(v int64) *int64 { return &v }

func validParams() model.CreatePaymentParams {
	return model.CreatePaymentParams{
		ExternalID:   "INV-1001",
		DebtorIBAN:   testutil.TestDebtorIBAN,
		CreditorIBAN: testutil.TestCreditorIBAN,
		Currency:     "EUR",
		AmountMinor:  amount(1050),
	}
}

func newTestPayment(t *testing.T) model.Payment {
	t.Helper()
	p, err := model.NewPayment(validParams(), testutil.TestMorning, false)
	require.NoError(t, err)
	return p
}

func TestNewPayment_Valid(t *testing.T) {
	p, err := model.NewPayment(validParams(), testutil.TestMorning, false)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(p.ID())
	assert.NoError(t, parseErr)
	assert.Equal(t, "INV-1001", p.ExternalID())
	assert.Equal(t, testutil.TestDebtorIBAN, p.DebtorIBAN())
	assert.Equal(t, testutil.TestCreditorIBAN, p.CreditorIBAN())
	assert.Equal(t, money.EUR, p.Currency())
	assert.Equal(t, int64(1050), p.AmountMinor())
	assert.Equal(t, "10.50", p.Amount().Major())
	assert.Equal(t, valueobject.PaymentStatusInitiated, p.Status())
	assert.False(t, p.ScheduledNextBusinessDay())
	assert.Equal(t, testutil.TestMorning, p.CreatedAt())

	_, parseErr = uuid.Parse(p.EndToEndID())
	assert.NoError(t, parseErr, "generated endToEndId should be a uuid")
	assert.NotEqual(t, p.ID(), p.EndToEndID())
	assert.Equal(t, "2025-03-14", p.RequestedExecutionDate())

	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, event.TypePaymentInitiated, p.DomainEvents()[0].EventType())
	assert.Equal(t, p.ID(), p.DomainEvents()[0].AggregateID())
}

func TestNewPayment_KeepsCallerIdentifiers(t *testing.T) {
	params := validParams()
	params.EndToEndID = "E2E-42"
	params.RequestedExecutionDate = "2025-04-01"

	p, err := model.NewPayment(params, testutil.TestAfternoon, true)
	require.NoError(t, err)

	assert.Equal(t, "E2E-42", p.EndToEndID())
	assert.Equal(t, "2025-04-01", p.RequestedExecutionDate())
	assert.True(t, p.ScheduledNextBusinessDay())
}

func TestNewPayment_UniqueIDs(t *testing.T) {
	a := newTestPayment(t)
	b := newTestPayment(t)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEqual(t, a.EndToEndID(), b.EndToEndID())
}

func TestNewPayment_ReportsEveryViolation(t *testing.T) {
	_, err := model.NewPayment(model.CreatePaymentParams{}, testutil.TestMorning, false)
	require.Error(t, err)

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		model.ViolationExternalIDRequired,
		model.ViolationDebtorIBAN,
		model.ViolationCreditorIBAN,
		model.ViolationCurrency,
		model.ViolationAmountMinor,
	}, verr.Details)
}

func TestNewPayment_Violations(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.CreatePaymentParams)
		want   []string
	}{
		{
			name:   "bad currency and negative amount",
			modify: func(p *model.CreatePaymentParams) { p.Currency = "GBP"; p.AmountMinor = amount(-5) },
			want:   []string{model.ViolationCurrency, model.ViolationAmountMinor},
		},
		{
			name:   "zero amount",
			modify: func(p *model.CreatePaymentParams) { p.AmountMinor = amount(0) },
			want:   []string{model.ViolationAmountMinor},
		},
		{
			name:   "missing amount",
			modify: func(p *model.CreatePaymentParams) { p.AmountMinor = nil },
			want:   []string{model.ViolationAmountMinor},
		},
		{
			name:   "lowercase currency",
			modify: func(p *model.CreatePaymentParams) { p.Currency = "eur" },
			want:   []string{model.ViolationCurrency},
		},
		{
			name:   "bad debtor iban",
			modify: func(p *model.CreatePaymentParams) { p.DebtorIBAN = "BAD" },
			want:   []string{model.ViolationDebtorIBAN},
		},
		{
			name:   "missing external id and creditor",
			modify: func(p *model.CreatePaymentParams) { p.ExternalID = ""; p.CreditorIBAN = "" },
			want:   []string{model.ViolationExternalIDRequired, model.ViolationCreditorIBAN},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.modify(&params)
			_, err := model.NewPayment(params, testutil.TestMorning, false)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Details)
		})
	}
}

func TestPayment_MarkPending(t *testing.T) {
	p := newTestPayment(t)
	later := testutil.TestMorning.Add(50 * time.Millisecond)

	pending, err := p.MarkPending(later)
	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentStatusPending, pending.Status())
	assert.Equal(t, testutil.TestMorning, pending.CreatedAt())

	// original untouched
	assert.Equal(t, valueobject.PaymentStatusInitiated, p.Status())
	assert.Len(t, p.DomainEvents(), 1)

	require.Len(t, pending.DomainEvents(), 2)
	assert.Equal(t, event.TypePaymentPending, pending.DomainEvents()[1].EventType())

	_, err = pending.MarkPending(later)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestPayment_Reject(t *testing.T) {
	p := newTestPayment(t)

	rejected, err := p.Reject("insufficient funds", testutil.TestMorning)
	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentStatusRejected, rejected.Status())
	assert.Equal(t, "insufficient funds", rejected.RejectReason())

	pending, err := p.MarkPending(testutil.TestMorning)
	require.NoError(t, err)
	rejected, err = pending.Reject("", testutil.TestMorning)
	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentStatusRejected, rejected.Status())

	_, err = rejected.Reject("again", testutil.TestMorning)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	_, err = rejected.MarkPending(testutil.TestMorning)
	assert.ErrorIs(t, err, model.ErrInvalidTransition, "rejected must never be overwritten by pending")
}

func TestReconstruct(t *testing.T) {
	p := model.Reconstruct("pay-1", "INV-1", testutil.TestDebtorIBAN, testutil.TestCreditorIBAN,
		money.SEK, 2550, "E2E-1", "2025-03-14", valueobject.PaymentStatusRejected, true, testutil.TestAfternoon)

	assert.Equal(t, "pay-1", p.ID())
	assert.Equal(t, money.SEK, p.Currency())
	assert.Equal(t, valueobject.PaymentStatusRejected, p.Status())
	assert.True(t, p.ScheduledNextBusinessDay())
	assert.Empty(t, p.DomainEvents())
}

func TestPayment_ClearDomainEvents(t *testing.T) {
	p := newTestPayment(t)
	cleared := p.ClearDomainEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.Len(t, p.DomainEvents(), 1)
}
