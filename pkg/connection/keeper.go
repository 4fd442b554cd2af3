package connection

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// Keeper errors.
var (
	ErrKeeperClosed      = errors.New("connection: keeper closed")
	ErrAlreadyConnected  = errors.New("connection: session already established")
	ErrConnectInProgress = errors.New("connection: session establishment in progress")
)

// State is the session state of the kept reader.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateReconnecting:
		return "RECONNECTING"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Session establishes reader communication sessions. *rfid.Manager
// satisfies it.
type Session interface {
	EstablishSession(readerID int32) error
}

// KeeperConfig configures a Keeper.
type KeeperConfig struct {
	ReaderID      int32
	AutoReconnect bool
	Backoff       BackoffConfig
	Logger        *slog.Logger
}

// Keeper keeps one reader's session established.
type Keeper struct {
	sess     Session
	readerID int32
	auto     bool
	backoff  *Backoff
	logger   *slog.Logger

	mu             sync.RWMutex
	state          State
	onStateChange  func(old, new State)
	onReconnecting func(attempt int, delay time.Duration)

	lostCh    chan struct{}
	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewKeeper creates a Keeper and starts its reconnect loop.
func NewKeeper(sess Session, cfg KeeperConfig) *Keeper {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	k := &Keeper{
		sess:     sess,
		readerID: cfg.ReaderID,
		auto:     cfg.AutoReconnect,
		backoff:  NewBackoff(cfg.Backoff),
		logger:   logger.With("reader", cfg.ReaderID),
		state:    StateDisconnected,
		lostCh:   make(chan struct{}, 1),
		closeCh:  make(chan struct{}),
	}
	k.wg.Add(1)
	go k.reconnectLoop()
	return k
}

// ReaderID returns the kept reader.
func (k *Keeper) ReaderID() int32 {
	return k.readerID
}

// State returns the current state.
func (k *Keeper) State() State {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.state
}

// Attempts returns the reconnect attempts since the last established session.
func (k *Keeper) Attempts() int {
	return k.backoff.Attempts()
}

// OnStateChange sets a callback invoked on every state transition.
func (k *Keeper) OnStateChange(fn func(old, new State)) {
	k.mu.Lock()
	k.onStateChange = fn
	k.mu.Unlock()
}

// OnReconnecting sets a callback invoked before each reconnect attempt.
func (k *Keeper) OnReconnecting(fn func(attempt int, delay time.Duration)) {
	k.mu.Lock()
	k.onReconnecting = fn
	k.mu.Unlock()
}

// Connect establishes the session once. It does not retry on failure and
// returns ErrConnectInProgress while another attempt is running.
func (k *Keeper) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Check and claim the CONNECTING state in one step so concurrent
	// callers never dial twice.
	k.mu.Lock()
	switch k.state {
	case StateClosed:
		k.mu.Unlock()
		return ErrKeeperClosed
	case StateConnected:
		k.mu.Unlock()
		return ErrAlreadyConnected
	case StateConnecting, StateReconnecting:
		k.mu.Unlock()
		return ErrConnectInProgress
	}
	old := k.state
	k.state = StateConnecting
	cb := k.onStateChange
	k.mu.Unlock()
	if cb != nil {
		cb(old, StateConnecting)
	}

	if err := k.sess.EstablishSession(k.readerID); err != nil {
		k.setStateUnlessClosed(StateDisconnected)
		return err
	}
	k.backoff.Reset()
	k.setStateUnlessClosed(StateConnected)
	return nil
}

// NotifySessionLost reports that the session terminated. With auto
// reconnect enabled the Keeper starts retrying.
func (k *Keeper) NotifySessionLost() {
	if k.State() != StateConnected {
		return
	}
	if !k.auto {
		k.setStateUnlessClosed(StateDisconnected)
		return
	}
	k.setStateUnlessClosed(StateReconnecting)
	select {
	case k.lostCh <- struct{}{}:
	default:
	}
}

// NotifySessionEstablished reports that the session came back without the
// Keeper's help, e.g. via the SDK's own re-establishment.
func (k *Keeper) NotifySessionEstablished() {
	switch k.State() {
	case StateClosed, StateConnected:
		return
	}
	k.backoff.Reset()
	k.setStateUnlessClosed(StateConnected)
}

// Close stops the reconnect loop. It does not terminate the session.
func (k *Keeper) Close() error {
	k.closeOnce.Do(func() {
		k.setState(StateClosed)
		close(k.closeCh)
	})
	k.wg.Wait()
	return nil
}

func (k *Keeper) reconnectLoop() {
	defer k.wg.Done()
	for {
		select {
		case <-k.closeCh:
			return
		case <-k.lostCh:
			k.reconnect()
		}
	}
}

func (k *Keeper) reconnect() {
	for {
		if k.State() != StateReconnecting {
			return
		}

		delay := k.backoff.Next()
		attempt := k.backoff.Attempts()

		k.mu.RLock()
		cb := k.onReconnecting
		k.mu.RUnlock()
		if cb != nil {
			cb(attempt, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-k.closeCh:
			timer.Stop()
			return
		case <-timer.C:
		}

		// The SDK may have restored the session while we waited.
		if k.State() != StateReconnecting {
			return
		}

		err := k.sess.EstablishSession(k.readerID)
		if err == nil {
			k.logger.Info("session re-established", "attempts", attempt)
			k.backoff.Reset()
			k.setStateUnlessClosed(StateConnected)
			return
		}
		if errors.Is(err, rfid.ErrClosed) {
			k.logger.Warn("giving up reconnect, manager closed")
			k.setStateUnlessClosed(StateDisconnected)
			return
		}
		k.logger.Debug("reconnect attempt failed", "attempt", attempt, "error", err)
	}
}

func (k *Keeper) setState(s State) {
	k.mu.Lock()
	old := k.state
	k.state = s
	cb := k.onStateChange
	k.mu.Unlock()

	if old != s && cb != nil {
		cb(old, s)
	}
}

func (k *Keeper) setStateUnlessClosed(s State) {
	k.mu.Lock()
	if k.state == StateClosed {
		k.mu.Unlock()
		return
	}
	old := k.state
	k.state = s
	cb := k.onStateChange
	k.mu.Unlock()

	if old != s && cb != nil {
		cb(old, s)
	}
}
