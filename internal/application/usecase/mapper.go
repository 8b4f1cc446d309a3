package usecase

import (
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/valueobject"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/iso20022"
)

// toTransaction is the single mapping from a payment to the canonical view all message
// projections are rendered from.
func toTransaction(p model.Payment) iso20022.Transaction {
	return iso20022.Transaction{
		PaymentID:              p.ID(),
		ExternalID:             p.ExternalID(),
		EndToEndID:             p.EndToEndID(),
		DebtorAccount:          p.DebtorIBAN(),
		CreditorAccount:        p.CreditorIBAN(),
		Amount:                 p.Amount().Amount(),
		Currency:               p.Currency().Code(),
		RequestedExecutionDate: p.RequestedExecutionDate(),
		CreatedAt:              p.CreatedAt(),
		Status:                 wireStatus(p.Status()),
	}
}

func wireStatus(s valueobject.PaymentStatus) iso20022.TransactionStatus {
	if s == valueobject.PaymentStatusRejected {
		return iso20022.StatusRejected
	}
	return iso20022.StatusAccepted
}
