package iso20022

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MessageType represents ISO 20022 message types.
type MessageType string

const (
	// Payment Initiation
	Pain001 MessageType = "pain.001.001.03" // CustomerCreditTransferInitiation
	Pain002 MessageType = "pain.002.001.03" // CustomerPaymentStatusReport

	// Payment Clearing and Settlement
	Pacs002 MessageType = "pacs.002.001.03" // FIToFIPaymentStatusReport
	Pacs008 MessageType = "pacs.008.001.02" // FIToFICustomerCreditTransfer

	// Cash Management
	Camt053 MessageType = "camt.053.001.02" // BankToCustomerStatement
	Camt054 MessageType = "camt.054.001.04" // BankToCustomerDebitCreditNotification
)

// ContentType is the media type every rendered document is served with.
const ContentType = "application/xml"

const namespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// Namespace returns the XML namespace of the message type.
func (t MessageType) Namespace() string {
	return namespacePrefix + string(t)
}

// String returns the message definition identifier, e.g. "pain.001.001.03".
func (t MessageType) String() string {
	return string(t)
}

// Message is the base interface for all ISO 20022 messages.
type Message interface {
	Type() MessageType
	ToXML() ([]byte, error)
}

// MessageHeader contains the group header fields shared by every message.
type MessageHeader struct {
	MessageID    string
	CreationDate time.Time
}

// TransactionStatus is the ExternalPaymentTransactionStatus1Code reported in status messages.
type TransactionStatus string

const (
	StatusAccepted TransactionStatus = "ACSP" // AcceptedSettlementInProcess
	StatusRejected TransactionStatus = "RJCT" // Rejected
)

// Transaction is the canonical view of a single payment that every projection is built
// from. Rendering all messages from the same Transaction keeps identifiers, amounts and
// status consistent across message types.
type Transaction struct {
	PaymentID              string
	ExternalID             string
	EndToEndID             string
	DebtorAccount          string // IBAN
	CreditorAccount        string // IBAN
	Amount                 decimal.Decimal
	Currency               string
	RequestedExecutionDate string // YYYY-MM-DD
	CreatedAt              time.Time
	Status                 TransactionStatus
}

// Placeholder party names; the emulated bank does not carry customer names.
const (
	debtorName   = "Debtor"
	creditorName = "Creditor"
)

// Suffixes appended to the payment id to derive per-message identifiers.
const (
	pain002Suffix = "-status"
	pacs008Suffix = "-pacs008"
	pacs002Suffix = "-pacs002"
	camt054Suffix = "-camt054"
)

// ForTransaction builds the single-payment message of the given type. now is used as the
// creation time of messages that are generated on request (status reports and
// notifications); initiation and clearing messages carry the payment's own creation time.
func ForTransaction(t MessageType, tx Transaction, now time.Time) (Message, error) {
	switch t {
	case Pain001:
		return NewCreditTransferInitiation(tx), nil
	case Pain002:
		return NewCustomerPaymentStatusReport(tx, now), nil
	case Pacs008:
		return NewFIToFICreditTransfer(tx), nil
	case Pacs002:
		return NewFIToFIPaymentStatusReport(tx, now), nil
	case Camt054:
		return NewDebitCreditNotification(tx, now), nil
	default:
		return nil, fmt.Errorf("message type %s is not a single-payment message", t)
	}
}

// SinglePaymentTypes lists the message types that can be rendered from one payment.
func SinglePaymentTypes() []MessageType {
	return []MessageType{Pain001, Pain002, Pacs008, Pacs002, Camt054}
}

// formatAmount renders a major-unit amount with exactly two fraction digits.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatDateTime renders an ISO-8601 UTC timestamp with millisecond precision.
func formatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// marshalDocument encodes doc with the XML declaration prepended.
func marshalDocument(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	return append(out, body...), nil
}

// Shared XML fragments.

type activeAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

type partyName struct {
	Nm string `xml:"Nm"`
}

type accountID struct {
	IBAN string `xml:"Id>IBAN"`
}

type groupStatusHeader struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

type originalGroupInfo struct {
	OrgnlMsgID   string `xml:"OrgnlMsgId"`
	OrgnlMsgNmID string `xml:"OrgnlMsgNmId"`
}

type transactionStatus struct {
	OrgnlEndToEndID string `xml:"OrgnlEndToEndId"`
	TxSts           string `xml:"TxSts"`
}
