package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TransitionFunc performs the deferred transition for one payment. It must check the
// current status itself; the scheduler only decides when it runs.
type TransitionFunc func(ctx context.Context, paymentID string)

// TransitionScheduler runs one deferred transition per payment id after a fixed delay.
// There is no per-payment cancellation: a scheduled transition always fires unless the
// scheduler is closed first.
type TransitionScheduler struct {
	delay  time.Duration
	fire   TransitionFunc
	logger *slog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

// NewTransitionScheduler creates a scheduler invoking fire delay after each Schedule call.
func NewTransitionScheduler(delay time.Duration, fire TransitionFunc, logger *slog.Logger) *TransitionScheduler {
	return &TransitionScheduler{
		delay:  delay,
		fire:   fire,
		logger: logger,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms the transition for paymentID. Scheduling an id that is already armed
// is a no-op.
func (s *TransitionScheduler) Schedule(paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.timers[paymentID]; ok {
		return
	}
	s.wg.Add(1)
	s.timers[paymentID] = time.AfterFunc(s.delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		delete(s.timers, paymentID)
		s.mu.Unlock()

		s.logger.Debug("deferred transition fired", "payment_id", paymentID)
		s.fire(context.Background(), paymentID)
	})
}

// Pending returns the number of armed transitions.
func (s *TransitionScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close stops every armed timer and waits for transitions already running. Later
// Schedule calls are ignored.
func (s *TransitionScheduler) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	for id, t := range s.timers {
		if t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, id)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
