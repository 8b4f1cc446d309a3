package iso20022

import (
	"encoding/xml"
	"strconv"

	"github.com/shopspring/decimal"
)

// CreditTransferInitiation represents pain.001 message.
type CreditTransferInitiation struct {
	Header      MessageHeader
	PaymentInfo []PaymentInstructionInfo
}

// NewCreditTransferInitiation builds a pain.001 carrying one instruction with one
// transaction. The group header message id is the payment id.
func NewCreditTransferInitiation(tx Transaction) CreditTransferInitiation {
	return CreditTransferInitiation{
		Header: MessageHeader{
			MessageID:    tx.PaymentID,
			CreationDate: tx.CreatedAt,
		},
		PaymentInfo: []PaymentInstructionInfo{
			{
				PaymentInfoID:          tx.ExternalID,
				RequestedExecutionDate: tx.RequestedExecutionDate,
				DebtorName:             debtorName,
				DebtorAccount:          tx.DebtorAccount,
				Transactions: []CreditTransferTransaction{
					{
						EndToEndID:      tx.EndToEndID,
						Amount:          tx.Amount,
						Currency:        tx.Currency,
						CreditorName:    creditorName,
						CreditorAccount: tx.CreditorAccount,
					},
				},
			},
		},
	}
}

func (c CreditTransferInitiation) Type() MessageType { return Pain001 }

func (c CreditTransferInitiation) ToXML() ([]byte, error) {
	infos := make([]pain001PmtInf, 0, len(c.PaymentInfo))
	var total decimal.Decimal
	var count int
	for _, info := range c.PaymentInfo {
		txs := make([]pain001CdtTrfTxInf, 0, len(info.Transactions))
		sum := info.ControlSum()
		for _, tx := range info.Transactions {
			txs = append(txs, pain001CdtTrfTxInf{
				EndToEndID: tx.EndToEndID,
				InstdAmt:   activeAmount{Ccy: tx.Currency, Value: formatAmount(tx.Amount)},
				Cdtr:       partyName{Nm: tx.CreditorName},
				CdtrAcct:   accountID{IBAN: tx.CreditorAccount},
			})
		}
		infos = append(infos, pain001PmtInf{
			PmtInfID:    info.PaymentInfoID,
			BtchBookg:   false,
			NbOfTxs:     strconv.Itoa(len(info.Transactions)),
			CtrlSum:     formatAmount(sum),
			ReqdExctnDt: info.RequestedExecutionDate,
			Dbtr:        partyName{Nm: info.DebtorName},
			DbtrAcct:    accountID{IBAN: info.DebtorAccount},
			CdtTrfTxInf: txs,
		})
		total = total.Add(sum)
		count += len(info.Transactions)
	}

	doc := pain001Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   Pain001.Namespace(),
		CstmrCdtTrfInitn: pain001CstmrCdtTrfInitn{
			GrpHdr: pain001GrpHdr{
				MsgID:   c.Header.MessageID,
				CreDtTm: formatDateTime(c.Header.CreationDate),
				NbOfTxs: strconv.Itoa(count),
				CtrlSum: formatAmount(total),
			},
			PmtInf: infos,
		},
	}
	return marshalDocument(doc)
}

// PaymentInstructionInfo contains payment instruction details.
type PaymentInstructionInfo struct {
	PaymentInfoID          string
	RequestedExecutionDate string
	DebtorName             string
	DebtorAccount          string
	Transactions           []CreditTransferTransaction
}

// ControlSum returns the sum of all transaction amounts in the instruction.
func (p PaymentInstructionInfo) ControlSum() decimal.Decimal {
	var sum decimal.Decimal
	for _, tx := range p.Transactions {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// CreditTransferTransaction contains individual transaction details.
type CreditTransferTransaction struct {
	EndToEndID      string
	Amount          decimal.Decimal // major units
	Currency        string
	CreditorName    string
	CreditorAccount string
}

// XML marshaling structs (internal)
type pain001Document struct {
	XMLName          xml.Name                `xml:"Document"`
	Xmlns            string                  `xml:"xmlns,attr"`
	CstmrCdtTrfInitn pain001CstmrCdtTrfInitn `xml:"CstmrCdtTrfInitn"`
}

type pain001CstmrCdtTrfInitn struct {
	GrpHdr pain001GrpHdr   `xml:"GrpHdr"`
	PmtInf []pain001PmtInf `xml:"PmtInf"`
}

type pain001GrpHdr struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
	NbOfTxs string `xml:"NbOfTxs"`
	CtrlSum string `xml:"CtrlSum"`
}

type pain001PmtInf struct {
	PmtInfID    string               `xml:"PmtInfId"`
	BtchBookg   bool                 `xml:"BtchBookg"`
	NbOfTxs     string               `xml:"NbOfTxs"`
	CtrlSum     string               `xml:"CtrlSum"`
	ReqdExctnDt string               `xml:"ReqdExctnDt"`
	Dbtr        partyName            `xml:"Dbtr"`
	DbtrAcct    accountID            `xml:"DbtrAcct"`
	CdtTrfTxInf []pain001CdtTrfTxInf `xml:"CdtTrfTxInf"`
}

type pain001CdtTrfTxInf struct {
	EndToEndID string       `xml:"PmtId>EndToEndId"`
	InstdAmt   activeAmount `xml:"Amt>InstdAmt"`
	Cdtr       partyName    `xml:"Cdtr"`
	CdtrAcct   accountID    `xml:"CdtrAcct"`
}
