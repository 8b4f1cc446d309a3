package iso20022

import (
	"encoding/xml"
	"time"
)

// FIToFIPaymentStatusReport represents pacs.002 message reporting on a pacs.008.
type FIToFIPaymentStatusReport struct {
	Header             MessageHeader
	OriginalMessageID  string
	OriginalEndToEndID string
	Status             TransactionStatus
}

// NewFIToFIPaymentStatusReport builds a pacs.002 referencing the pacs.008 of tx.
func NewFIToFIPaymentStatusReport(tx Transaction, now time.Time) FIToFIPaymentStatusReport {
	return FIToFIPaymentStatusReport{
		Header: MessageHeader{
			MessageID:    tx.PaymentID + pacs002Suffix,
			CreationDate: now,
		},
		OriginalMessageID:  NewFIToFICreditTransfer(tx).Header.MessageID,
		OriginalEndToEndID: tx.EndToEndID,
		Status:             tx.Status,
	}
}

func (r FIToFIPaymentStatusReport) Type() MessageType { return Pacs002 }

func (r FIToFIPaymentStatusReport) ToXML() ([]byte, error) {
	doc := pacs002Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   Pacs002.Namespace(),
		FIToFIPmtStsRpt: pacs002FIToFIPmtStsRpt{
			GrpHdr: groupStatusHeader{
				MsgID:   r.Header.MessageID,
				CreDtTm: formatDateTime(r.Header.CreationDate),
			},
			OrgnlGrpInfAndSts: originalGroupInfo{
				OrgnlMsgID:   r.OriginalMessageID,
				OrgnlMsgNmID: Pacs008.String(),
			},
			TxInfAndSts: transactionStatus{
				OrgnlEndToEndID: r.OriginalEndToEndID,
				TxSts:           string(r.Status),
			},
		},
	}
	return marshalDocument(doc)
}

// XML marshaling structs
type pacs002Document struct {
	XMLName         xml.Name               `xml:"Document"`
	Xmlns           string                 `xml:"xmlns,attr"`
	FIToFIPmtStsRpt pacs002FIToFIPmtStsRpt `xml:"FIToFIPmtStsRpt"`
}

type pacs002FIToFIPmtStsRpt struct {
	GrpHdr            groupStatusHeader `xml:"GrpHdr"`
	OrgnlGrpInfAndSts originalGroupInfo `xml:"OrgnlGrpInfAndSts"`
	TxInfAndSts       transactionStatus `xml:"TxInfAndSts"`
}
