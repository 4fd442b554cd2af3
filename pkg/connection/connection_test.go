package connection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

func TestBackoff(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		b := NewBackoff(BackoffConfig{Jitter: -1})
		want := []time.Duration{
			500 * time.Millisecond,
			1 * time.Second,
			2 * time.Second,
			4 * time.Second,
			8 * time.Second,
			16 * time.Second,
			30 * time.Second,
			30 * time.Second,
		}
		for i, w := range want {
			if got := b.Next(); got != w {
				t.Errorf("delay %d: expected %v, got %v", i, w, got)
			}
		}
	})

	t.Run("Jitter", func(t *testing.T) {
		b := NewBackoff(BackoffConfig{})
		for range 20 {
			base := b.Current()
			got := b.Next()
			if got < base || got > base+base/4 {
				t.Errorf("delay %v outside [%v, %v]", got, base, base+base/4)
			}
		}
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBackoff(BackoffConfig{Jitter: -1})
		b.Next()
		b.Next()
		b.Next()
		if b.Attempts() != 3 {
			t.Errorf("expected 3 attempts, got %d", b.Attempts())
		}
		b.Reset()
		if b.Attempts() != 0 {
			t.Errorf("expected 0 attempts after reset, got %d", b.Attempts())
		}
		if got := b.Next(); got != InitialBackoff {
			t.Errorf("expected %v after reset, got %v", InitialBackoff, got)
		}
	})

	t.Run("CustomConfig", func(t *testing.T) {
		b := NewBackoff(BackoffConfig{
			Initial:    10 * time.Millisecond,
			Max:        25 * time.Millisecond,
			Multiplier: 3,
			Jitter:     -1,
		})
		if got := b.Next(); got != 10*time.Millisecond {
			t.Errorf("expected 10ms, got %v", got)
		}
		if got := b.Next(); got != 25*time.Millisecond {
			t.Errorf("expected cap of 25ms, got %v", got)
		}
	})
}

// fakeSession fails the first failures calls to EstablishSession.
type fakeSession struct {
	mu       sync.Mutex
	calls    int
	failures int
	err      error
}

func (s *fakeSession) EstablishSession(readerID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return s.err
	}
	return nil
}

func (s *fakeSession) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type blockingSession struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *blockingSession) EstablishSession(readerID int32) error {
	s.calls.Add(1)
	<-s.release
	return nil
}

func fastBackoff() BackoffConfig {
	return BackoffConfig{Initial: time.Millisecond, Max: 5 * time.Millisecond, Jitter: -1}
}

func waitForState(t *testing.T, k *Keeper, want State) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if k.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected state %v, got %v", want, k.State())
}

func TestKeeper(t *testing.T) {
	t.Run("InitialState", func(t *testing.T) {
		k := NewKeeper(&fakeSession{}, KeeperConfig{ReaderID: 1})
		defer k.Close()

		if k.State() != StateDisconnected {
			t.Errorf("expected DISCONNECTED, got %v", k.State())
		}
		if k.ReaderID() != 1 {
			t.Errorf("expected reader 1, got %d", k.ReaderID())
		}
	})

	t.Run("SuccessfulConnect", func(t *testing.T) {
		k := NewKeeper(&fakeSession{}, KeeperConfig{ReaderID: 1})
		defer k.Close()

		if err := k.Connect(context.Background()); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		if k.State() != StateConnected {
			t.Errorf("expected CONNECTED, got %v", k.State())
		}
	})

	t.Run("FailedConnect", func(t *testing.T) {
		boom := errors.New("reader out of range")
		k := NewKeeper(&fakeSession{failures: 1, err: boom}, KeeperConfig{ReaderID: 1})
		defer k.Close()

		if err := k.Connect(context.Background()); !errors.Is(err, boom) {
			t.Errorf("expected %v, got %v", boom, err)
		}
		if k.State() != StateDisconnected {
			t.Errorf("expected DISCONNECTED, got %v", k.State())
		}
	})

	t.Run("AlreadyConnected", func(t *testing.T) {
		k := NewKeeper(&fakeSession{}, KeeperConfig{ReaderID: 1})
		defer k.Close()

		_ = k.Connect(context.Background())
		if err := k.Connect(context.Background()); !errors.Is(err, ErrAlreadyConnected) {
			t.Errorf("expected ErrAlreadyConnected, got %v", err)
		}
	})

	t.Run("ConcurrentConnect", func(t *testing.T) {
		sess := &blockingSession{release: make(chan struct{})}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1})
		defer k.Close()

		first := make(chan error, 1)
		go func() { first <- k.Connect(context.Background()) }()
		waitForState(t, k, StateConnecting)

		var wg sync.WaitGroup
		var inProgress atomic.Int32
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if errors.Is(k.Connect(context.Background()), ErrConnectInProgress) {
					inProgress.Add(1)
				}
			}()
		}
		wg.Wait()
		close(sess.release)

		if err := <-first; err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		if n := inProgress.Load(); n != 8 {
			t.Errorf("expected 8 ErrConnectInProgress, got %d", n)
		}
		if n := sess.calls.Load(); n != 1 {
			t.Errorf("expected 1 session call, got %d", n)
		}
	})

	t.Run("CanceledContext", func(t *testing.T) {
		sess := &fakeSession{}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1})
		defer k.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := k.Connect(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if sess.Calls() != 0 {
			t.Errorf("expected no session calls, got %d", sess.Calls())
		}
	})

	t.Run("Closed", func(t *testing.T) {
		k := NewKeeper(&fakeSession{}, KeeperConfig{ReaderID: 1})
		_ = k.Close()
		_ = k.Close()

		if k.State() != StateClosed {
			t.Errorf("expected CLOSED, got %v", k.State())
		}
		if err := k.Connect(context.Background()); !errors.Is(err, ErrKeeperClosed) {
			t.Errorf("expected ErrKeeperClosed, got %v", err)
		}
	})

	t.Run("StateChangeCallback", func(t *testing.T) {
		k := NewKeeper(&fakeSession{}, KeeperConfig{ReaderID: 1})
		defer k.Close()

		var mu sync.Mutex
		var seen []State
		k.OnStateChange(func(old, new State) {
			mu.Lock()
			seen = append(seen, new)
			mu.Unlock()
		})

		_ = k.Connect(context.Background())

		mu.Lock()
		defer mu.Unlock()
		if len(seen) != 2 || seen[0] != StateConnecting || seen[1] != StateConnected {
			t.Errorf("expected [CONNECTING CONNECTED], got %v", seen)
		}
	})
}

func TestKeeperReconnect(t *testing.T) {
	t.Run("ReconnectOnSessionLost", func(t *testing.T) {
		sess := &fakeSession{}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1, AutoReconnect: true, Backoff: fastBackoff()})
		defer k.Close()

		_ = k.Connect(context.Background())
		k.NotifySessionLost()

		waitForState(t, k, StateConnected)
		if sess.Calls() != 2 {
			t.Errorf("expected 2 session calls, got %d", sess.Calls())
		}
	})

	t.Run("BackoffOnFailure", func(t *testing.T) {
		sess := &fakeSession{}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1, AutoReconnect: true, Backoff: fastBackoff()})
		defer k.Close()

		var attempts atomic.Int32
		k.OnReconnecting(func(attempt int, delay time.Duration) {
			attempts.Store(int32(attempt))
		})

		_ = k.Connect(context.Background())
		sess.mu.Lock()
		sess.failures = 4
		sess.err = errors.New("no active session")
		sess.mu.Unlock()
		k.NotifySessionLost()

		waitForState(t, k, StateConnected)
		if got := attempts.Load(); got != 4 {
			t.Errorf("expected 4 reconnect attempts, got %d", got)
		}
		if k.Attempts() != 0 {
			t.Errorf("expected backoff reset, got %d attempts", k.Attempts())
		}
	})

	t.Run("DisabledAutoReconnect", func(t *testing.T) {
		sess := &fakeSession{}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1, Backoff: fastBackoff()})
		defer k.Close()

		_ = k.Connect(context.Background())
		k.NotifySessionLost()

		if k.State() != StateDisconnected {
			t.Errorf("expected DISCONNECTED, got %v", k.State())
		}
		time.Sleep(20 * time.Millisecond)
		if sess.Calls() != 1 {
			t.Errorf("expected no reconnect, got %d calls", sess.Calls())
		}
	})

	t.Run("EstablishedExternally", func(t *testing.T) {
		sess := &fakeSession{}
		k := NewKeeper(sess, KeeperConfig{
			ReaderID:      1,
			AutoReconnect: true,
			Backoff:       BackoffConfig{Initial: time.Hour, Jitter: -1},
		})
		defer k.Close()

		_ = k.Connect(context.Background())
		k.NotifySessionLost()
		waitForState(t, k, StateReconnecting)

		k.NotifySessionEstablished()
		if k.State() != StateConnected {
			t.Errorf("expected CONNECTED, got %v", k.State())
		}
	})

	t.Run("GiveUpWhenManagerClosed", func(t *testing.T) {
		sess := &fakeSession{}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1, AutoReconnect: true, Backoff: fastBackoff()})
		defer k.Close()

		_ = k.Connect(context.Background())
		sess.mu.Lock()
		sess.failures = 100
		sess.err = rfid.ErrClosed
		sess.mu.Unlock()
		k.NotifySessionLost()

		waitForState(t, k, StateDisconnected)
		if sess.Calls() != 2 {
			t.Errorf("expected a single reconnect attempt, got %d calls", sess.Calls()-1)
		}
	})

	t.Run("CloseStopsRetrying", func(t *testing.T) {
		sess := &fakeSession{failures: 1000, err: errors.New("unavailable")}
		k := NewKeeper(sess, KeeperConfig{ReaderID: 1, AutoReconnect: true, Backoff: fastBackoff()})

		k.NotifySessionEstablished()
		k.NotifySessionLost()
		waitForState(t, k, StateReconnecting)

		_ = k.Close()
		calls := sess.Calls()
		time.Sleep(20 * time.Millisecond)
		if sess.Calls() != calls {
			t.Errorf("expected no attempts after Close")
		}
	})
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "DISCONNECTED"},
		{StateConnecting, "CONNECTING"},
		{StateConnected, "CONNECTED"},
		{StateReconnecting, "RECONNECTING"},
		{StateClosed, "CLOSED"},
		{State(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
