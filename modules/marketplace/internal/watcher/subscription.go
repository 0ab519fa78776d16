package watcher

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription is a running event delivery started by Watcher.Subscribe.
type Subscription struct {
	id     uuid.UUID
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	closed bool
	err    error

	// deliverMu is held from the closed check until the callback returns.
	deliverMu  sync.Mutex
	inCallback atomic.Bool
}

func newSubscription(cancel context.CancelFunc) *Subscription {
	return &Subscription{
		id:     uuid.New(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Unsubscribe stops the delivery. No callback starts after it returns: a delivery that
// already passed its check is waited for, a callback already running is not interrupted.
// Use Done to wait for a running callback to return. It can be called any number of times,
// from any goroutine, including from the callback itself.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()

	if s.inCallback.Load() {
		return
	}
	s.deliverMu.Lock()
	s.deliverMu.Unlock() //nolint:staticcheck // waits for an in-flight delivery
}

// Done is closed when the delivery has stopped, after Unsubscribe or on a fatal error.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that stopped the delivery, nil if it was unsubscribed.
// Only meaningful after Done is closed.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// deliver calls fn unless the subscription is closed.
func (s *Subscription) deliver(fn func()) bool {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if s.isClosed() {
		return false
	}
	s.inCallback.Store(true)
	defer s.inCallback.Store(false)
	fn()
	return true
}

func (s *Subscription) finish(err error) {
	s.mu.Lock()
	if !s.closed {
		s.err = err
	}
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	close(s.done)
}
