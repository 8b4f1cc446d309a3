package iso20022

import (
	"encoding/xml"
	"time"
)

// CustomerPaymentStatusReport represents pain.002 message reporting the status of a
// previously received pain.001.
type CustomerPaymentStatusReport struct {
	Header             MessageHeader
	OriginalMessageID  string
	OriginalEndToEndID string
	Status             TransactionStatus
}

// NewCustomerPaymentStatusReport builds a pain.002 referencing the pain.001 of tx.
func NewCustomerPaymentStatusReport(tx Transaction, now time.Time) CustomerPaymentStatusReport {
	return CustomerPaymentStatusReport{
		Header: MessageHeader{
			MessageID:    tx.PaymentID + pain002Suffix,
			CreationDate: now,
		},
		OriginalMessageID:  NewCreditTransferInitiation(tx).Header.MessageID,
		OriginalEndToEndID: tx.EndToEndID,
		Status:             tx.Status,
	}
}

func (r CustomerPaymentStatusReport) Type() MessageType { return Pain002 }

func (r CustomerPaymentStatusReport) ToXML() ([]byte, error) {
	doc := pain002Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   Pain002.Namespace(),
		CstmrPmtStsRpt: pain002CstmrPmtStsRpt{
			GrpHdr: groupStatusHeader{
				MsgID:   r.Header.MessageID,
				CreDtTm: formatDateTime(r.Header.CreationDate),
			},
			OrgnlGrpInfAndSts: originalGroupInfo{
				OrgnlMsgID:   r.OriginalMessageID,
				OrgnlMsgNmID: Pain001.String(),
			},
			OrgnlPmtInfAndSts: pain002OrgnlPmtInfAndSts{
				TxInfAndSts: transactionStatus{
					OrgnlEndToEndID: r.OriginalEndToEndID,
					TxSts:           string(r.Status),
				},
			},
		},
	}
	return marshalDocument(doc)
}

// XML marshaling structs
type pain002Document struct {
	XMLName        xml.Name              `xml:"Document"`
	Xmlns          string                `xml:"xmlns,attr"`
	CstmrPmtStsRpt pain002CstmrPmtStsRpt `xml:"CstmrPmtStsRpt"`
}

type pain002CstmrPmtStsRpt struct {
	GrpHdr            groupStatusHeader        `xml:"GrpHdr"`
	OrgnlGrpInfAndSts originalGroupInfo        `xml:"OrgnlGrpInfAndSts"`
	OrgnlPmtInfAndSts pain002OrgnlPmtInfAndSts `xml:"OrgnlPmtInfAndSts"`
}

type pain002OrgnlPmtInfAndSts struct {
	TxInfAndSts transactionStatus `xml:"TxInfAndSts"`
}
