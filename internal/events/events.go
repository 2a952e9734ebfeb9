// Package events provides a small in-process pub/sub bus for auth
// lifecycle notifications.
package events

import "sync"

// Event identifies a lifecycle notification type.
type Event string

const (
	// Logout is emitted when the session is no longer usable and cached
	// identity state should be cleared.
	Logout Event = "logout"

	// TokenRefreshFailed is emitted when a session refresh attempt fails.
	TokenRefreshFailed Event = "token-refresh-failed"
)

type subscriber struct {
	id int
	fn func()
}

// Bus delivers events synchronously to subscribers in registration order.
// Events carry no payload.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Event][]subscriber
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{subs: make(map[Event][]subscriber)}
}

// Subscribe registers fn for the given event and returns an unsubscribe
// function. Unsubscribing more than once is a no-op.
func (b *Bus) Subscribe(event Event, fn func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.subs[event] = append(b.subs[event], subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.subs[event]
		for i, s := range subs {
			if s.id == id {
				b.subs[event] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers the event to all current subscribers. Handlers run on the
// caller's goroutine; a handler registered during delivery is not invoked
// for this emission.
func (b *Bus) Emit(event Event) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs[event]))
	copy(subs, b.subs[event])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}
