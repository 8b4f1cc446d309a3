package valueobject

import "fmt"

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus struct {
	value string
}

var (
	PaymentStatusInitiated = PaymentStatus{"INITIATED"}
	PaymentStatusPending   = PaymentStatus{"PENDING"}
	PaymentStatusRejected  = PaymentStatus{"REJECTED"}
)

var validStatuses = map[string]PaymentStatus{
	"INITIATED": PaymentStatusInitiated,
	"PENDING":   PaymentStatusPending,
	"REJECTED":  PaymentStatusRejected,
}

// allowedTransitions is the full state machine. Nothing ever returns to INITIATED.
var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusInitiated: {PaymentStatusPending, PaymentStatusRejected},
	PaymentStatusPending:   {PaymentStatusRejected},
}

// NewPaymentStatus validates and creates a PaymentStatus from a string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	if status, ok := validStatuses[s]; ok {
		return status, nil
	}
	return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
}

// String returns the string representation of the payment status.
func (s PaymentStatus) String() string {
	return s.value
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsZero returns true if the payment status is uninitialized.
func (s PaymentStatus) IsZero() bool {
	return s.value == ""
}
