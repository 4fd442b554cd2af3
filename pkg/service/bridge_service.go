package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/connection"
	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/subscription"
	"github.com/Syfaro/ZebraRfid/pkg/transport"
)

// DefaultPublishTimeout bounds one publish when Config leaves it unset.
const DefaultPublishTimeout = 5 * time.Second

// Journal records reads and access results. *persistence.Store implements it.
type Journal interface {
	RecordRead(ctx context.Context, readerID int32, tag rfid.TagData, receivedAt time.Time) error
	RecordAccess(ctx context.Context, readerID int32, op, epc string, tag rfid.TagData, err error) error
}

// BridgeService forwards reader events to a publisher and a journal while
// keeping reader sessions established.
type BridgeService struct {
	mgr     *rfid.Manager
	pub     transport.Publisher
	journal Journal
	config  Config
	logger  *slog.Logger
	trace   log.Logger

	mu      sync.RWMutex
	state   ServiceState
	keepers map[int32]*connection.Keeper
	sub     *subscription.Subscription[rfid.Event]
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	eventsReceived  atomic.Int64
	eventsPublished atomic.Int64
	publishErrors   atomic.Int64
	readsJournaled  atomic.Int64
	journalErrors   atomic.Int64
	reconnects      atomic.Int64

	kindMu sync.Mutex
	byKind map[string]int64
}

// NewBridgeService creates a stopped service. A nil publisher discards
// events; a nil journal disables journaling.
func NewBridgeService(mgr *rfid.Manager, pub transport.Publisher, journal Journal, cfg Config) *BridgeService {
	if pub == nil {
		pub = transport.NopPublisher{}
	}
	if cfg.EventMask == 0 {
		cfg.EventMask = rfid.EventMaskAll
	}
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = transport.DefaultTopicPrefix
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	trace := cfg.TraceLogger
	if trace == nil {
		trace = log.NoopLogger{}
	}

	return &BridgeService{
		mgr:     mgr,
		pub:     pub,
		journal: journal,
		config:  cfg,
		logger:  logger.With("component", "bridge"),
		trace:   trace,
		state:   StateIdle,
		keepers: make(map[int32]*connection.Keeper),
		byKind:  make(map[string]int64),
	}
}

// State returns the service state.
func (s *BridgeService) State() ServiceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Start brings the bridge up:
//  1. start the manager and take an event subscription
//  2. subscribe the configured event mask
//  3. enable reader detection, if configured
//  4. create a keeper per reader and connect it
//  5. run the dispatcher
//
// A reader that cannot be connected does not fail Start; its keeper retries
// when the reader next appears.
func (s *BridgeService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle && s.state != StateStopped {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.state = StateStarting
	s.mu.Unlock()

	sub, err := s.prepare()
	if err != nil {
		s.setState(StateIdle)
		return err
	}

	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.sub = sub
	for _, rc := range s.config.Readers {
		k := connection.NewKeeper(s.mgr, connection.KeeperConfig{
			ReaderID:      rc.ID,
			AutoReconnect: rc.AutoReconnect,
			Backoff:       s.config.Backoff,
			Logger:        s.logger,
		})
		id := rc.ID
		k.OnStateChange(func(old, new connection.State) {
			s.logger.Info("reader session", "reader", id, "from", old, "to", new)
		})
		k.OnReconnecting(func(attempt int, delay time.Duration) {
			s.reconnects.Add(1)
			s.logger.Debug("reconnecting reader", "reader", id, "attempt", attempt, "delay", delay)
		})
		s.keepers[rc.ID] = k
	}
	keepers := s.keeperList()
	s.mu.Unlock()

	for _, k := range keepers {
		if err := k.Connect(ctx); err != nil {
			s.logger.Warn("reader not connected", "reader", k.ReaderID(), "error", err)
		}
	}

	s.wg.Add(1)
	go s.dispatch(sub)

	s.setState(StateRunning)
	s.logger.Info("bridge started", "readers", len(keepers), "mask", s.config.EventMask)
	return nil
}

// prepare runs the manager steps of Start.
func (s *BridgeService) prepare() (*subscription.Subscription[rfid.Event], error) {
	if err := s.mgr.Start(); err != nil && !errors.Is(err, rfid.ErrAlreadyStarted) {
		return nil, fmt.Errorf("start manager: %w", err)
	}

	// Subscribe before anything can emit so no event is missed.
	sub, err := s.mgr.Events()
	if err != nil {
		return nil, fmt.Errorf("subscribe events: %w", err)
	}

	if err := s.mgr.Subscribe(s.config.EventMask); err != nil {
		sub.Cancel()
		return nil, fmt.Errorf("subscribe event mask: %w", err)
	}
	if s.config.ReaderDetection {
		if err := s.mgr.EnableReaderDetection(true); err != nil {
			sub.Cancel()
			return nil, fmt.Errorf("enable reader detection: %w", err)
		}
	}
	return sub, nil
}

// Stop closes the keepers, ends the event subscription and waits for the
// dispatcher. Events not yet dispatched are dropped.
func (s *BridgeService) Stop() error {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.state = StateStopping
	keepers := s.keeperList()
	s.keepers = make(map[int32]*connection.Keeper)
	sub := s.sub
	s.sub = nil
	cancel := s.cancel
	s.mu.Unlock()

	for _, k := range keepers {
		_ = k.Close()
	}
	cancel()
	sub.Cancel()
	s.wg.Wait()

	s.setState(StateStopped)
	s.logger.Info("bridge stopped")
	return nil
}

// Stats returns a snapshot of the counters.
func (s *BridgeService) Stats() Stats {
	st := Stats{
		State:           s.State(),
		EventsReceived:  s.eventsReceived.Load(),
		EventsPublished: s.eventsPublished.Load(),
		PublishErrors:   s.publishErrors.Load(),
		ReadsJournaled:  s.readsJournaled.Load(),
		JournalErrors:   s.journalErrors.Load(),
		Reconnects:      s.reconnects.Load(),
		EventsByKind:    make(map[string]int64),
		Readers:         make(map[int32]string),
	}

	s.kindMu.Lock()
	for k, v := range s.byKind {
		st.EventsByKind[k] = v
	}
	s.kindMu.Unlock()

	s.mu.RLock()
	for id, k := range s.keepers {
		st.Readers[id] = k.State().String()
	}
	s.mu.RUnlock()
	return st
}

func (s *BridgeService) dispatch(sub *subscription.Subscription[rfid.Event]) {
	defer s.wg.Done()
	for ev := range sub.C() {
		s.handle(ev)
	}
}

func (s *BridgeService) handle(ev rfid.Event) {
	s.eventsReceived.Add(1)
	s.kindMu.Lock()
	s.byKind[ev.Kind()]++
	s.kindMu.Unlock()

	keeper := s.keeper(ev.ReaderID())
	switch e := ev.(type) {
	case rfid.SessionTerminated:
		if keeper != nil {
			keeper.NotifySessionLost()
		}
	case rfid.SessionEstablished:
		if keeper != nil {
			keeper.NotifySessionEstablished()
		}
	case rfid.ReaderAppeared:
		if keeper != nil && keeper.State() == connection.StateDisconnected {
			if err := keeper.Connect(s.ctx); err != nil {
				s.logger.Warn("connect on appearance failed", "reader", e.Info.ID, "error", err)
			}
		}
	case rfid.TagRead:
		s.journalRead(e)
	}

	s.publish(ev)
}

func (s *BridgeService) publish(ev rfid.Event) {
	suffix, payload, err := transport.EncodeEvent(ev)
	if err != nil {
		s.publishErrors.Add(1)
		s.traceError(ev.ReaderID(), "encode "+ev.Kind(), err)
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.config.PublishTimeout)
	defer cancel()

	topic := transport.Topic(s.config.TopicPrefix, suffix)
	if err := s.pub.Publish(ctx, topic, payload); err != nil {
		s.publishErrors.Add(1)
		s.logger.Warn("publish failed", "topic", topic, "error", err)
		s.traceError(ev.ReaderID(), "publish "+topic, err)
		return
	}
	s.eventsPublished.Add(1)
}

func (s *BridgeService) journalRead(e rfid.TagRead) {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordRead(s.ctx, e.Reader, e.Tag, time.Now()); err != nil {
		s.journalErrors.Add(1)
		s.logger.Warn("journal read failed", "epc", e.Tag.EPC, "error", err)
		s.traceError(e.Reader, "journal read", err)
		return
	}
	s.readsJournaled.Add(1)
}

func (s *BridgeService) keeper(id int32) *connection.Keeper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keepers[id]
}

// keeperList returns the keepers. Caller holds s.mu.
func (s *BridgeService) keeperList() []*connection.Keeper {
	out := make([]*connection.Keeper, 0, len(s.keepers))
	for _, k := range s.keepers {
		out = append(out, k)
	}
	return out
}

func (s *BridgeService) setState(state ServiceState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *BridgeService) traceError(readerID int32, op string, err error) {
	id := readerID
	s.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.mgr.SessionID(),
		Direction: log.DirectionOut,
		Layer:     log.LayerService,
		Category:  log.CategoryError,
		ReaderID:  &id,
		Error: &log.ErrorEventData{
			Layer:   log.LayerService,
			Message: err.Error(),
			Context: op,
		},
	})
}
