package iso20022

import (
	"encoding/xml"
	"strconv"

	"github.com/shopspring/decimal"
)

// FIToFICreditTransfer represents pacs.008 message.
type FIToFICreditTransfer struct {
	Header       MessageHeader
	Transactions []FICreditTransferTransaction
}

// NewFIToFICreditTransfer builds the interbank leg of tx as a single-transaction pacs.008.
func NewFIToFICreditTransfer(tx Transaction) FIToFICreditTransfer {
	return FIToFICreditTransfer{
		Header: MessageHeader{
			MessageID:    tx.PaymentID + pacs008Suffix,
			CreationDate: tx.CreatedAt,
		},
		Transactions: []FICreditTransferTransaction{
			{
				EndToEndID:      tx.EndToEndID,
				Amount:          tx.Amount,
				Currency:        tx.Currency,
				DebtorAccount:   tx.DebtorAccount,
				CreditorAccount: tx.CreditorAccount,
			},
		},
	}
}

func (f FIToFICreditTransfer) Type() MessageType { return Pacs008 }

func (f FIToFICreditTransfer) ToXML() ([]byte, error) {
	txs := make([]pacs008CdtTrfTxInf, 0, len(f.Transactions))
	var total decimal.Decimal
	for _, tx := range f.Transactions {
		txs = append(txs, pacs008CdtTrfTxInf{
			EndToEndID: tx.EndToEndID,
			InstdAmt:   activeAmount{Ccy: tx.Currency, Value: formatAmount(tx.Amount)},
			DbtrAcct:   accountID{IBAN: tx.DebtorAccount},
			CdtrAcct:   accountID{IBAN: tx.CreditorAccount},
		})
		total = total.Add(tx.Amount)
	}

	doc := pacs008Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   Pacs008.Namespace(),
		FIToFICstmrCdtTrf: pacs008FIToFICstmrCdtTrf{
			GrpHdr: pacs008GrpHdr{
				MsgID:   f.Header.MessageID,
				CreDtTm: formatDateTime(f.Header.CreationDate),
				NbOfTxs: strconv.Itoa(len(f.Transactions)),
				CtrlSum: formatAmount(total),
			},
			CdtTrfTxInf: txs,
		},
	}
	return marshalDocument(doc)
}

// FICreditTransferTransaction contains FI-level transaction details.
type FICreditTransferTransaction struct {
	EndToEndID      string
	Amount          decimal.Decimal // major units
	Currency        string
	DebtorAccount   string
	CreditorAccount string
}

// XML marshaling structs
type pacs008Document struct {
	XMLName           xml.Name                 `xml:"Document"`
	Xmlns             string                   `xml:"xmlns,attr"`
	FIToFICstmrCdtTrf pacs008FIToFICstmrCdtTrf `xml:"FIToFICstmrCdtTrf"`
}

type pacs008FIToFICstmrCdtTrf struct {
	GrpHdr      pacs008GrpHdr        `xml:"GrpHdr"`
	CdtTrfTxInf []pacs008CdtTrfTxInf `xml:"CdtTrfTxInf"`
}

type pacs008GrpHdr struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
	NbOfTxs string `xml:"NbOfTxs"`
	CtrlSum string `xml:"CtrlSum"`
}

type pacs008CdtTrfTxInf struct {
	EndToEndID string       `xml:"PmtId>EndToEndId"`
	InstdAmt   activeAmount `xml:"Amt>InstdAmt"`
	DbtrAcct   accountID    `xml:"DbtrAcct"`
	CdtrAcct   accountID    `xml:"CdtrAcct"`
}
