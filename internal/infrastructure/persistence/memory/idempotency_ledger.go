package memory

import (
	"context"
	"sync"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
)

var _ port.IdempotencyLedger = (*IdempotencyLedger)(nil)

// IdempotencyLedger maps idempotency tokens to payment ids for the process lifetime.
type IdempotencyLedger struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewIdempotencyLedger() *IdempotencyLedger {
	return &IdempotencyLedger{entries: make(map[string]string)}
}

func (l *IdempotencyLedger) Lookup(_ context.Context, token string) (string, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	id, ok := l.entries[token]
	return id, ok, nil
}

// Record never rebinds a token; the first binding wins.
func (l *IdempotencyLedger) Record(_ context.Context, token, paymentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.entries[token]; !exists {
		l.entries[token] = paymentID
	}
	return nil
}

func (l *IdempotencyLedger) Reset(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = make(map[string]string)
	return nil
}
