package subscription

import "sync"

type subState uint8

const (
	stateOpen subState = iota
	stateDraining
	stateCancelled
)

// Subscription is one subscriber's view of a Hub.
type Subscription[T any] struct {
	id  uint32
	hub *Hub[T]

	out  chan T
	done chan struct{}

	mu    sync.Mutex
	cond  *sync.Cond
	queue []T
	state subState

	cancelOnce sync.Once
}

func newSubscription[T any](hub *Hub[T], id uint32) *Subscription[T] {
	s := &Subscription[T]{
		id:   id,
		hub:  hub,
		out:  make(chan T),
		done: make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// ID returns the subscription identifier.
func (s *Subscription[T]) ID() uint32 {
	return s.id
}

// C returns the delivery channel. It is closed after Cancel, or after the
// hub is closed and the queue has drained.
func (s *Subscription[T]) C() <-chan T {
	return s.out
}

// Pending returns the number of queued, undelivered values.
func (s *Subscription[T]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Cancel removes the subscription from its hub and drops undelivered
// values. Other subscriptions are unaffected. It also stops a drain in
// progress after the hub is closed. Safe to call more than once.
func (s *Subscription[T]) Cancel() {
	s.cancelOnce.Do(func() {
		s.hub.remove(s.id)

		s.mu.Lock()
		s.state = stateCancelled
		s.queue = nil
		s.cond.Broadcast()
		s.mu.Unlock()

		close(s.done)
	})
}

// push enqueues a value. Called with the hub lock held.
func (s *Subscription[T]) push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateOpen {
		return
	}
	s.queue = append(s.queue, v)
	s.cond.Signal()
}

// finish switches the subscription to draining mode after hub close.
func (s *Subscription[T]) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateOpen {
		s.state = stateDraining
		s.cond.Broadcast()
	}
}

// run moves queued values onto the delivery channel in FIFO order.
func (s *Subscription[T]) run() {
	defer close(s.out)

	for {
		s.mu.Lock()
		for len(s.queue) == 0 && s.state == stateOpen {
			s.cond.Wait()
		}
		if s.state == stateCancelled || len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}

		v := s.queue[0]
		var zero T
		s.queue[0] = zero
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- v:
		case <-s.done:
			return
		}
	}
}
