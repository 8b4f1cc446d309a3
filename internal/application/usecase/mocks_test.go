package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/usecase"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/observability"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/testutil"
)

// --- Mock implementations ---

type mockEventPublisher struct {
	mu              sync.Mutex
	publishFunc     func(ctx context.Context, topic string, events ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
	topics          []string
}

func (m *mockEventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, topic, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	m.topics = append(m.topics, topic)
	return nil
}

func (m *mockEventPublisher) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.publishedEvents))
	for _, e := range m.publishedEvents {
		out = append(out, e.EventType())
	}
	return out
}

type mockScheduler struct {
	mu        sync.Mutex
	scheduled []string
}

func (m *mockScheduler) Schedule(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled = append(m.scheduled, id)
}

type mockMetrics struct {
	mu          sync.Mutex
	created     int
	replays     int
	validations int
	transitions map[string]int
	rendered    map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{transitions: map[string]int{}, rendered: map[string]int{}}
}

func (m *mockMetrics) PaymentCreated(context.Context, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *mockMetrics) IdempotentReplay(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replays++
}

func (m *mockMetrics) ValidationFailed(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validations++
}

func (m *mockMetrics) StatusTransition(_ context.Context, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions[to]++
}

func (m *mockMetrics) transitionCount(to string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions[to]
}

func (m *mockMetrics) MessageRendered(_ context.Context, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rendered[kind]++
}

func newEmitter(pub *mockEventPublisher) *usecase.EventEmitter {
	return usecase.NewEventEmitter(pub, "", 0, observability.NopLogger())
}

func fixedClock(t time.Time) usecase.Clock {
	c := testutil.NewClock(t)
	return c.Now
}
