// Package subscription forwards values produced by a background fetcher to a consumer channel.
package subscription

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
)

// BufferSize is the buffer of the inbound value and error channels,
// so a slow consumer doesn't block the producer right away.
var BufferSize = 8

// Subscription is the producer side of a stream of values with a separate error channel.
type Subscription[T any] struct {
	channel chan<- T
	in      chan T
	err     chan error

	quitOnce   sync.Once
	finishOnce sync.Once
	quit       chan struct{}
	quitDone   chan struct{}
}

func NewSubscription[T any](channel chan<- T) *Subscription[T] {
	s := &Subscription[T]{
		channel:  channel,
		in:       make(chan T, BufferSize),
		err:      make(chan error, BufferSize),
		quit:     make(chan struct{}),
		quitDone: make(chan struct{}),
	}
	go s.run()
	return s
}

// Unsubscribe stops forwarding. It is idempotent.
func (s *Subscription[T]) Unsubscribe() {
	_ = s.UnsubscribeWithContext(context.Background())
}

func (s *Subscription[T]) UnsubscribeWithContext(ctx context.Context) (err error) {
	s.quitOnce.Do(func() {
		select {
		case s.quit <- struct{}{}:
			<-s.quitDone
		case <-s.quitDone:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return errors.WithStack(err)
}

// Finish closes the subscription after every queued value has been delivered,
// or earlier if the consumer unsubscribes. Send must not be called after Finish.
func (s *Subscription[T]) Finish() {
	s.finishOnce.Do(func() {
		close(s.in)
	})
}

// Client returns the consumer side of the subscription.
func (s *Subscription[T]) Client() *ClientSubscription[T] {
	return &ClientSubscription[T]{subscription: s}
}

func (s *Subscription[T]) Err() <-chan error {
	return s.err
}

// Done is closed once the forwarding loop has stopped.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.quitDone
}

func (s *Subscription[T]) IsClosed() bool {
	select {
	case <-s.quitDone:
		return true
	default:
		return false
	}
}

// Send queues a value for the consumer. Returns an error if the subscription is closed.
func (s *Subscription[T]) Send(ctx context.Context, value T) error {
	if s.IsClosed() {
		return errors.Wrap(errs.InternalError, "subscription is closed")
	}
	select {
	case s.in <- value:
		return nil
	case <-s.quitDone:
		return errors.Wrap(errs.InternalError, "subscription is closed")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// SendError queues an error for the consumer. Returns an error if the subscription is closed.
func (s *Subscription[T]) SendError(ctx context.Context, err error) error {
	if s.IsClosed() {
		return errors.Wrap(errs.InternalError, "subscription is closed")
	}
	select {
	case s.err <- err:
		return nil
	case <-s.quitDone:
		return errors.Wrap(errs.InternalError, "subscription is closed")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (s *Subscription[T]) run() {
	defer close(s.quitDone)
	for {
		select {
		case <-s.quit:
			return
		case value, ok := <-s.in:
			if !ok {
				return
			}
			select {
			case s.channel <- value:
			case <-s.quit:
				return
			}
		}
	}
}

// ClientSubscription is the consumer side of a [Subscription].
type ClientSubscription[T any] struct {
	subscription *Subscription[T]
}

func (c *ClientSubscription[T]) Unsubscribe() {
	c.subscription.Unsubscribe()
}

func (c *ClientSubscription[T]) UnsubscribeWithContext(ctx context.Context) error {
	return c.subscription.UnsubscribeWithContext(ctx)
}

func (c *ClientSubscription[T]) Err() <-chan error {
	return c.subscription.Err()
}

func (c *ClientSubscription[T]) Done() <-chan struct{} {
	return c.subscription.Done()
}

func (c *ClientSubscription[T]) IsClosed() bool {
	return c.subscription.IsClosed()
}
