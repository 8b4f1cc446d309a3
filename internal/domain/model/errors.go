package model

import (
	"errors"
	"strings"
)

var (
	// ErrMissingIdempotencyKey is returned when a creation request carries no idempotency token.
	ErrMissingIdempotencyKey = errors.New("missing idempotency key")
	// ErrPaymentNotFound is returned when no payment exists for an id.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrInvalidTransition is returned when a status change is not allowed by the state machine.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrDuplicateEndToEndID is returned by a store when another payment already holds
	// the end-to-end id.
	ErrDuplicateEndToEndID = errors.New("end-to-end id already used")
)

// Violation messages reported by payment validation.
const (
	ViolationExternalIDRequired = "externalId required"
	ViolationDebtorIBAN         = "debtorIban invalid"
	ViolationCreditorIBAN       = "creditorIban invalid"
	ViolationCurrency           = "currency invalid"
	ViolationAmountMinor        = "amountMinor invalid"
	ViolationEndToEndDuplicate  = "endToEndId duplicate"
)

// ValidationError carries every rule a creation request violated.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, ", ")
}
