package sim

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// DefaultReadInterval is the inventory round period used when
// Config.ReadInterval is zero.
const DefaultReadInterval = 100 * time.Millisecond

// Version is the SDK version string reported by the simulator.
const Version = "sim-2.0.3"

// Reader describes one simulated reader.
type Reader struct {
	ID             int32
	Name           string
	Model          int32
	ConnectionType int32 // 1 MFi, 2 BTLE

	// ASCIIPassword is required by EstablishASCIIConnection.
	ASCIIPassword string

	// RequireASCII makes configuration setters fail with
	// ResultASCIIConnectionRequired until an ASCII connection exists.
	RequireASCII bool

	SerialNumber string
	Battery      int32 // percent, 0 means 100
}

// Tag describes one simulated Gen2 tag. Memory contents are hex text.
type Tag struct {
	EPC  string
	PC   string // defaults to a PC word matching the EPC length
	TID  string
	User string

	RSSI int16 // dBm, defaults to -55

	AccessPassword int64
	KillPassword   int64
}

// Config configures an SDK.
type Config struct {
	Readers      []Reader
	Tags         []Tag
	ReadInterval time.Duration

	// Logger receives debug logs of simulated activity. Nil disables them.
	Logger *slog.Logger
}

// SDK is a simulated sdk.API.
type SDK struct {
	mu sync.Mutex

	delegate    sdk.Delegate
	mask        int32
	mode        int32
	detection   bool
	reestablish bool

	readers map[int32]*readerState
	order   []int32
	tags    []*tagState

	interval time.Duration
	logger   *slog.Logger

	fail *failure
	wg   sync.WaitGroup
}

type failure struct {
	result  sdk.Result
	message string
}

// New creates a simulator with the given readers and tag population.
func New(cfg Config) *SDK {
	interval := cfg.ReadInterval
	if interval <= 0 {
		interval = DefaultReadInterval
	}

	s := &SDK{
		mode:     sdk.OpModeAll,
		readers:  make(map[int32]*readerState, len(cfg.Readers)),
		interval: interval,
		logger:   cfg.Logger,
	}
	for _, r := range cfg.Readers {
		s.readers[r.ID] = newReaderState(r)
		s.order = append(s.order, r.ID)
	}
	for _, t := range cfg.Tags {
		s.tags = append(s.tags, newTagState(t))
	}
	return s
}

// DefaultConfig returns a single RFD40 reader with a small tag population.
func DefaultConfig() Config {
	return Config{
		Readers: []Reader{{
			ID:             1,
			Name:           "RFD40+_213010000012",
			Model:          40,
			ConnectionType: 2,
			SerialNumber:   "213010000012",
		}},
		Tags: []Tag{
			{EPC: "E28011700000020F5A8C1A01", TID: "E2801170200020000000", User: "00000000000000000000000000000000", RSSI: -48},
			{EPC: "E28011700000020F5A8C1A02", TID: "E2801170200020000001", User: "00000000000000000000000000000000", RSSI: -57},
			{EPC: "300833B2DDD9014000000001", TID: "E2003412012345678901", RSSI: -63, AccessPassword: 0x12345678, KillPassword: 0x0BADF00D},
		},
	}
}

// Close stops every running operation and waits for its goroutine.
func (s *SDK) Close() {
	s.mu.Lock()
	var ops []*operation
	for _, r := range s.readers {
		if r.op != nil {
			ops = append(ops, r.op)
		}
	}
	s.mu.Unlock()

	for _, op := range ops {
		op.cancel()
	}
	s.wg.Wait()
}

// SetDelegate registers the callback receiver. Nil removes it.
func (s *SDK) SetDelegate(d sdk.Delegate) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delegate = d
	return sdk.ResultSuccess
}

// SDKVersion returns Version.
func (s *SDK) SDKVersion() string {
	return Version
}

// SetOperationalMode selects the transports. Only MFi, BTLE and both are
// accepted.
func (s *SDK) SetOperationalMode(mode int32) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.takeFailure(nil); ok {
		return r
	}
	switch mode {
	case sdk.OpModeMFi, sdk.OpModeBTLE, sdk.OpModeAll:
		s.mode = mode
		return sdk.ResultSuccess
	default:
		return sdk.ResultInvalidParams
	}
}

// SubscribeForEvents adds mask to the delivered event categories.
func (s *SDK) SubscribeForEvents(mask int32) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.takeFailure(nil); ok {
		return r
	}
	s.mask |= mask
	return sdk.ResultSuccess
}

// UnsubscribeForEvents removes mask from the delivered event categories.
func (s *SDK) UnsubscribeForEvents(mask int32) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.takeFailure(nil); ok {
		return r
	}
	s.mask &^= mask
	return sdk.ResultSuccess
}

// GetConfigurations refreshes nothing; the simulator has no cache.
func (s *SDK) GetConfigurations() sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.takeFailure(nil); ok {
		return r
	}
	return sdk.ResultSuccess
}

// notification is a callback captured under the lock and delivered after it
// is released.
type notification struct {
	mask int32
	fn   func(sdk.Delegate)
}

// notify delivers the notifications whose category is subscribed. It must
// be called without s.mu held.
func (s *SDK) notify(ns ...notification) {
	s.mu.Lock()
	d, mask := s.delegate, s.mask
	s.mu.Unlock()

	if d == nil {
		return
	}
	for _, n := range ns {
		if mask&n.mask == 0 {
			continue
		}
		n.fn(d)
	}
}

// takeFailure consumes an injected failure. Must be called with s.mu held.
func (s *SDK) takeFailure(status *string) (sdk.Result, bool) {
	if s.fail == nil {
		return 0, false
	}
	f := s.fail
	s.fail = nil
	setStatus(status, f.message)
	return f.result, true
}

// reader returns the reader for a command that needs an established
// session. Must be called with s.mu held.
func (s *SDK) reader(readerID int32, status *string) (*readerState, sdk.Result) {
	if r, ok := s.takeFailure(status); ok {
		return nil, r
	}
	r, ok := s.readers[readerID]
	if !ok || !r.present {
		setStatus(status, fmt.Sprintf("unknown reader %d", readerID))
		return nil, sdk.ResultReaderNotAvailable
	}
	if !r.session {
		setStatus(status, "no active session")
		return nil, sdk.ResultReaderNotAvailable
	}
	return r, sdk.ResultSuccess
}

// configurable is reader plus the ASCII connection requirement for setters.
func (s *SDK) configurable(readerID int32, status *string) (*readerState, sdk.Result) {
	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		return nil, res
	}
	if r.cfg.RequireASCII && !r.ascii {
		setStatus(status, "ASCII connection required")
		return nil, sdk.ResultASCIIConnectionRequired
	}
	return r, sdk.ResultSuccess
}

func (s *SDK) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func setStatus(status *string, msg string) {
	if status != nil {
		*status = msg
	}
}

// Compile-time interface satisfaction check.
var _ sdk.API = (*SDK)(nil)
