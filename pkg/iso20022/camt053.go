package iso20022

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const statementIDPrefix = "statement-"

// BankToCustomerStatement represents camt.053 message over a set of payments.
type BankToCustomerStatement struct {
	Header      MessageHeader
	StatementID string
	Entries     []NotificationEntry
}

// NewBankToCustomerStatement builds a camt.053 with one entry per transaction, in the
// order given. The message id is derived from now, formatted in now's location.
func NewBankToCustomerStatement(txs []Transaction, now time.Time, statementID string) BankToCustomerStatement {
	entries := make([]NotificationEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, entryFor(tx))
	}
	return BankToCustomerStatement{
		Header: MessageHeader{
			MessageID:    statementIDPrefix + now.Format("20060102150405"),
			CreationDate: now,
		},
		StatementID: statementID,
		Entries:     entries,
	}
}

func (s BankToCustomerStatement) Type() MessageType { return Camt053 }

// ControlSum returns the sum of all entry amounts, irrespective of currency.
func (s BankToCustomerStatement) ControlSum() decimal.Decimal {
	var sum decimal.Decimal
	for _, e := range s.Entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

func (s BankToCustomerStatement) ToXML() ([]byte, error) {
	entries := make([]camt053Ntry, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, camt053Ntry{
			Amt:        activeAmount{Ccy: e.Currency, Value: formatAmount(e.Amount)},
			CdtDbtInd:  CreditIndicator,
			NtryRef:    e.Reference,
			EndToEndID: e.EndToEndID,
		})
	}

	doc := camt053Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   Camt053.Namespace(),
		BkToCstmrStmt: camt053BkToCstmrStmt{
			GrpHdr: camt053GrpHdr{
				MsgID:    s.Header.MessageID,
				CreDtTm:  formatDateTime(s.Header.CreationDate),
				NbOfMsgs: strconv.Itoa(len(s.Entries)),
				CtrlSum:  formatAmount(s.ControlSum()),
			},
			Stmt: camt053Stmt{
				ID:   s.StatementID,
				Ntry: entries,
			},
		},
	}
	return marshalDocument(doc)
}

// XML marshaling structs
type camt053Document struct {
	XMLName       xml.Name             `xml:"Document"`
	Xmlns         string               `xml:"xmlns,attr"`
	BkToCstmrStmt camt053BkToCstmrStmt `xml:"BkToCstmrStmt"`
}

type camt053BkToCstmrStmt struct {
	GrpHdr camt053GrpHdr `xml:"GrpHdr"`
	Stmt   camt053Stmt   `xml:"Stmt"`
}

type camt053GrpHdr struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfMsgs string `xml:"NbOfMsgs"`
	CtrlSum  string `xml:"CtrlSum"`
}

type camt053Stmt struct {
	ID   string        `xml:"Id"`
	Ntry []camt053Ntry `xml:"Ntry"`
}

type camt053Ntry struct {
	Amt        activeAmount `xml:"Amt"`
	CdtDbtInd  string       `xml:"CdtDbtInd"`
	NtryRef    string       `xml:"NtryRef"`
	EndToEndID string       `xml:"NtryDtls>TxDtls>Refs>EndToEndId"`
}
