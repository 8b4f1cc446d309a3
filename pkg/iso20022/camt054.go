package iso20022

import (
	"encoding/xml"
	"time"

	"github.com/shopspring/decimal"
)

// Entry-level codes used by the cash-management messages.
const (
	CreditIndicator     = "CRDT"
	BankTransactionCode = "TRF"
)

// DebitCreditNotification represents camt.054 message. The emulated bank always reports
// a single page containing a single credit entry.
type DebitCreditNotification struct {
	Header         MessageHeader
	NotificationID string
	Entry          NotificationEntry
}

// NotificationEntry is one booked entry in a notification or statement.
type NotificationEntry struct {
	Reference  string
	Amount     decimal.Decimal // major units
	Currency   string
	EndToEndID string
}

// NewDebitCreditNotification builds a camt.054 for tx. The notification id and entry
// reference are both the payment id.
func NewDebitCreditNotification(tx Transaction, now time.Time) DebitCreditNotification {
	return DebitCreditNotification{
		Header: MessageHeader{
			MessageID:    tx.PaymentID + camt054Suffix,
			CreationDate: now,
		},
		NotificationID: tx.PaymentID,
		Entry:          entryFor(tx),
	}
}

func (n DebitCreditNotification) Type() MessageType { return Camt054 }

func (n DebitCreditNotification) ToXML() ([]byte, error) {
	doc := camt054Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   Camt054.Namespace(),
		BkToCstmrDbtCdtNtfctn: camt054BkToCstmrDbtCdtNtfctn{
			GrpHdr: groupStatusHeader{
				MsgID:   n.Header.MessageID,
				CreDtTm: formatDateTime(n.Header.CreationDate),
			},
			Ntfctn: camt054Ntfctn{
				ID:          n.NotificationID,
				NtfctnPgntn: pagination{PgNb: 1, LastPgInd: true},
				Ntry: camt054Ntry{
					NtryRef:   n.Entry.Reference,
					Amt:       activeAmount{Ccy: n.Entry.Currency, Value: formatAmount(n.Entry.Amount)},
					CdtDbtInd: CreditIndicator,
					BkTxCd:    BankTransactionCode,
					TxDtls: camt054TxDtls{
						EndToEndID: n.Entry.EndToEndID,
						Ustrd:      n.Entry.EndToEndID,
					},
				},
			},
		},
	}
	return marshalDocument(doc)
}

func entryFor(tx Transaction) NotificationEntry {
	return NotificationEntry{
		Reference:  tx.PaymentID,
		Amount:     tx.Amount,
		Currency:   tx.Currency,
		EndToEndID: tx.EndToEndID,
	}
}

// XML marshaling structs
type camt054Document struct {
	XMLName               xml.Name                     `xml:"Document"`
	Xmlns                 string                       `xml:"xmlns,attr"`
	BkToCstmrDbtCdtNtfctn camt054BkToCstmrDbtCdtNtfctn `xml:"BkToCstmrDbtCdtNtfctn"`
}

type camt054BkToCstmrDbtCdtNtfctn struct {
	GrpHdr groupStatusHeader `xml:"GrpHdr"`
	Ntfctn camt054Ntfctn     `xml:"Ntfctn"`
}

type camt054Ntfctn struct {
	ID          string      `xml:"Id"`
	NtfctnPgntn pagination  `xml:"NtfctnPgntn"`
	Ntry        camt054Ntry `xml:"Ntry"`
}

type pagination struct {
	PgNb      int  `xml:"PgNb"`
	LastPgInd bool `xml:"LastPgInd"`
}

type camt054Ntry struct {
	NtryRef   string        `xml:"NtryRef"`
	Amt       activeAmount  `xml:"Amt"`
	CdtDbtInd string        `xml:"CdtDbtInd"`
	BkTxCd    string        `xml:"BkTxCd>Prtry"`
	TxDtls    camt054TxDtls `xml:"NtryDtls>TxDtls"`
}

type camt054TxDtls struct {
	EndToEndID string `xml:"Refs>EndToEndId"`
	Ustrd      string `xml:"RmtInf>Ustrd"`
}
