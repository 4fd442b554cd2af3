package subscription

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recvTimeout = 2 * time.Second

func receiveN[T any](t *testing.T, sub *Subscription[T], n int) []T {
	t.Helper()
	out := make([]T, 0, n)
	for len(out) < n {
		select {
		case v, ok := <-sub.C():
			if !ok {
				t.Fatalf("channel closed after %d of %d values", len(out), n)
			}
			out = append(out, v)
		case <-time.After(recvTimeout):
			t.Fatalf("timed out after %d of %d values", len(out), n)
		}
	}
	return out
}

func waitClosed[T any](t *testing.T, sub *Subscription[T]) []T {
	t.Helper()
	var rest []T
	for {
		select {
		case v, ok := <-sub.C():
			if !ok {
				return rest
			}
			rest = append(rest, v)
		case <-time.After(recvTimeout):
			t.Fatal("channel was not closed")
		}
	}
}

func TestHubDeliversInPublishOrder(t *testing.T) {
	hub := NewHub[int]()
	sub, err := hub.Subscribe()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		hub.Publish(i)
	}

	got := receiveN(t, sub, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub[string]()
	a, err := hub.Subscribe()
	require.NoError(t, err)
	b, err := hub.Subscribe()
	require.NoError(t, err)

	want := []string{"appeared", "session", "read", "read", "terminated"}
	for _, v := range want {
		hub.Publish(v)
	}

	assert.Equal(t, want, receiveN(t, a, len(want)))
	assert.Equal(t, want, receiveN(t, b, len(want)))
}

func TestCancelDoesNotAffectOtherSubscribers(t *testing.T) {
	hub := NewHub[int]()
	a, _ := hub.Subscribe()
	b, _ := hub.Subscribe()

	hub.Publish(1)
	assert.Equal(t, []int{1}, receiveN(t, a, 1))

	a.Cancel()
	waitClosed(t, a)

	hub.Publish(2)
	hub.Publish(3)

	assert.Equal(t, []int{1, 2, 3}, receiveN(t, b, 3))
	assert.Equal(t, 1, hub.Count())
}

func TestCancelIsIdempotent(t *testing.T) {
	hub := NewHub[int]()
	sub, _ := hub.Subscribe()

	sub.Cancel()
	sub.Cancel()

	waitClosed(t, sub)
	assert.Equal(t, 0, hub.Count())
}

func TestCancelDropsPending(t *testing.T) {
	hub := NewHub[int]()
	sub, _ := hub.Subscribe()

	for i := 0; i < 10; i++ {
		hub.Publish(i)
	}
	sub.Cancel()

	// At most the value already handed to the pump may slip through.
	rest := waitClosed(t, sub)
	assert.LessOrEqual(t, len(rest), 1)
}

func TestLateSubscriberSeesOnlyNewValues(t *testing.T) {
	hub := NewHub[int]()
	early, _ := hub.Subscribe()

	hub.Publish(1)
	late, _ := hub.Subscribe()
	hub.Publish(2)

	assert.Equal(t, []int{1, 2}, receiveN(t, early, 2))
	assert.Equal(t, []int{2}, receiveN(t, late, 1))
}

func TestCloseDrainsAndClosesChannels(t *testing.T) {
	hub := NewHub[int]()
	sub, _ := hub.Subscribe()

	hub.Publish(1)
	hub.Publish(2)
	hub.Close()
	hub.Publish(3)

	assert.Equal(t, []int{1, 2}, waitClosed(t, sub))
}

func TestCancelAfterCloseStopsUnreadDrain(t *testing.T) {
	hub := NewHub[int]()
	sub, _ := hub.Subscribe()

	for i := 0; i < 5; i++ {
		hub.Publish(i)
	}
	hub.Close()

	// Nobody reads; Cancel alone must end delivery and close the channel.
	sub.Cancel()
	rest := waitClosed(t, sub)
	assert.LessOrEqual(t, len(rest), 1)
	assert.Zero(t, sub.Pending())
}

func TestSubscribeAfterClose(t *testing.T) {
	hub := NewHub[int]()
	hub.Close()
	hub.Close()

	sub, err := hub.Subscribe()
	assert.ErrorIs(t, err, ErrHubClosed)
	assert.Nil(t, sub)
}

func TestUnsubscribe(t *testing.T) {
	hub := NewHub[int]()
	sub, _ := hub.Subscribe()

	require.NoError(t, hub.Unsubscribe(sub.ID()))
	waitClosed(t, sub)

	assert.ErrorIs(t, hub.Unsubscribe(sub.ID()), ErrSubscriptionNotFound)
}

func TestSlowConsumerDoesNotBlockPublisher(t *testing.T) {
	hub := NewHub[int]()
	slow, _ := hub.Subscribe()
	fast, _ := hub.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(recvTimeout):
		t.Fatal("publisher blocked on an idle subscriber")
	}

	assert.Len(t, receiveN(t, fast, 1000), 1000)
	assert.Len(t, receiveN(t, slow, 1000), 1000)
}

func TestConcurrentPublishersSameOrderForAll(t *testing.T) {
	hub := NewHub[int]()
	a, _ := hub.Subscribe()
	b, _ := hub.Subscribe()

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				hub.Publish(base + i)
			}
		}(p * 1000)
	}
	wg.Wait()

	assert.Equal(t, receiveN(t, a, 200), receiveN(t, b, 200))
}

func TestCancelFromConsumerDuringDelivery(t *testing.T) {
	hub := NewHub[int]()
	a, _ := hub.Subscribe()
	b, _ := hub.Subscribe()

	for i := 0; i < 20; i++ {
		hub.Publish(i)
	}

	v := <-a.C()
	assert.Equal(t, 0, v)
	a.Cancel()

	for i := 20; i < 25; i++ {
		hub.Publish(i)
	}

	got := receiveN(t, b, 25)
	assert.Equal(t, 24, got[24])
}
