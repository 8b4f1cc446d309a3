package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
)

var _ port.PaymentStore = (*PaymentStore)(nil)

// PaymentStore keeps payments in process memory. Payments are stored as values with
// their pending domain events stripped.
type PaymentStore struct {
	mu         sync.RWMutex
	payments   map[string]model.Payment
	endToEndID map[string]string
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments:   make(map[string]model.Payment),
		endToEndID: make(map[string]string),
	}
}

func (s *PaymentStore) Save(_ context.Context, payment model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[payment.ID()]; exists {
		return fmt.Errorf("payment %s already exists", payment.ID())
	}
	if owner, exists := s.endToEndID[payment.EndToEndID()]; exists {
		return fmt.Errorf("end-to-end id %s held by payment %s: %w", payment.EndToEndID(), owner, model.ErrDuplicateEndToEndID)
	}

	s.payments[payment.ID()] = payment.ClearDomainEvents()
	s.endToEndID[payment.EndToEndID()] = payment.ID()
	return nil
}

func (s *PaymentStore) FindByID(_ context.Context, id string) (model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return model.Payment{}, model.ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentStore) FindByEndToEndID(_ context.Context, endToEndID string) (model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.endToEndID[endToEndID]
	if !ok {
		return model.Payment{}, model.ErrPaymentNotFound
	}
	return s.payments[id], nil
}

func (s *PaymentStore) List(_ context.Context) ([]model.Payment, error) {
	s.mu.RLock()
	out := make([]model.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

// Update holds the write lock while fn runs, which makes status checks inside fn a
// compare-and-set against concurrent writers. The returned payment keeps the events
// fn produced; the stored copy does not.
func (s *PaymentStore) Update(_ context.Context, id string, fn func(model.Payment) (model.Payment, error)) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.payments[id]
	if !ok {
		return model.Payment{}, model.ErrPaymentNotFound
	}
	updated, err := fn(current)
	if err != nil {
		return model.Payment{}, err
	}
	if updated.ID() != id {
		return model.Payment{}, fmt.Errorf("update of payment %s returned payment %s", id, updated.ID())
	}
	s.payments[id] = updated.ClearDomainEvents()
	return updated, nil
}

func (s *PaymentStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = make(map[string]model.Payment)
	s.endToEndID = make(map[string]string)
	return nil
}

// Len returns the number of stored payments.
func (s *PaymentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}
