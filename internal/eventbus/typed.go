// Package eventbus provides an in-process fan-out bus used to hand reports to
// background workers without blocking the caller.
package eventbus

import "sync"

// DefaultBuffer is the channel capacity used by Subscribe.
const DefaultBuffer = 8

// TypedBus is a type-safe publish/subscribe bus for events of type T.
type TypedBus[T any] struct {
	mu     sync.RWMutex
	subs   []chan T
	closed bool
}

// NewTyped creates a new TypedBus.
func NewTyped[T any]() *TypedBus[T] { return &TypedBus[T]{} }

// Publish offers the event to every subscriber without blocking and returns
// how many accepted it. A subscriber whose buffer is full misses the event.
func (b *TypedBus[T]) Publish(e T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return 0
	}
	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- e:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribe registers a subscriber with DefaultBuffer capacity.
func (b *TypedBus[T]) Subscribe() <-chan T {
	return b.SubscribeBuffered(DefaultBuffer)
}

// SubscribeBuffered registers a subscriber whose channel holds up to size
// pending events. Subscribing to a closed bus returns a closed channel.
func (b *TypedBus[T]) SubscribeBuffered(size int) <-chan T {
	if size < 0 {
		size = 0
	}
	ch := make(chan T, size)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Subscribers returns the number of live subscribers.
func (b *TypedBus[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *TypedBus[T]) Unsubscribe(sub <-chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes the bus and all subscriber channels. Pending events stay
// readable until drained.
func (b *TypedBus[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.mu.Unlock()
}
