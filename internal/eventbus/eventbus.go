// ABOUTME: Typed publish/subscribe bus decoupling the pipeline from its observers
// ABOUTME: Delivery is synchronous; handlers run outside the bus lock

package eventbus

import "sync"

// Bus fans events of one type out to subscribed handlers.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[int]func(T)
	nextID   int
}

func New[T any]() *Bus[T] {
	return &Bus[T]{handlers: make(map[int]func(T))}
}

// Subscribe registers a handler and returns its unsubscribe function.
func (b *Bus[T]) Subscribe(handler func(T)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Publish delivers the event to every current handler, in arbitrary
// order. The handler snapshot is taken under the lock so a handler may
// subscribe or unsubscribe from inside a callback without deadlocking.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := make([]func(T), 0, len(b.handlers))
	for _, h := range b.handlers {
		snapshot = append(snapshot, h)
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(event)
	}
}
