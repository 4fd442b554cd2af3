package subscription

import (
	"errors"
	"sync"
)

// Hub errors.
var (
	ErrHubClosed            = errors.New("subscription hub closed")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Hub broadcasts values to every registered subscription.
type Hub[T any] struct {
	mu sync.Mutex

	// Active subscriptions by ID
	subs map[uint32]*Subscription[T]

	// Registration order, used for deterministic fan-out
	order []uint32

	nextID uint32
	closed bool
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[uint32]*Subscription[T]),
	}
}

// Subscribe registers a new subscription. It fails with ErrHubClosed once
// Close has been called.
func (h *Hub[T]) Subscribe() (*Subscription[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	h.nextID++
	sub := newSubscription(h, h.nextID)
	h.subs[sub.id] = sub
	h.order = append(h.order, sub.id)

	go sub.run()

	return sub, nil
}

// Publish appends v to every subscription's queue. It never blocks on a
// consumer. Publishing to a closed hub is a no-op.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	// The lock is held across the whole fan-out so concurrent publishers
	// cannot interleave differently for different subscribers.
	for _, id := range h.order {
		h.subs[id].push(v)
	}
}

// Unsubscribe cancels the subscription with the given ID.
func (h *Hub[T]) Unsubscribe(id uint32) error {
	h.mu.Lock()
	sub, ok := h.subs[id]
	h.mu.Unlock()

	if !ok {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()
	return nil
}

// Count returns the number of active subscriptions.
func (h *Hub[T]) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close stops publication. Open subscriptions drain their queues and then
// close their channels. Delivery after Close still waits on the reader: a
// consumer that stops reading must Cancel its subscription to release the
// delivery goroutine. Close is idempotent.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true

	subs := make([]*Subscription[T], 0, len(h.order))
	for _, id := range h.order {
		subs = append(subs, h.subs[id])
	}
	h.subs = make(map[uint32]*Subscription[T])
	h.order = nil
	h.mu.Unlock()

	for _, sub := range subs {
		sub.finish()
	}
}

// remove drops a subscription from the registry.
func (h *Hub[T]) remove(id uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[id]; !ok {
		return
	}
	delete(h.subs, id)
	for i, sid := range h.order {
		if sid == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}
