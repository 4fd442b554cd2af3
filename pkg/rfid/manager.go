package rfid

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/sdk"
	"github.com/Syfaro/ZebraRfid/pkg/subscription"
)

// Config configures a Manager.
type Config struct {
	// Logger receives operational debug logs. Nil disables them.
	Logger *slog.Logger

	// TraceLogger receives a command/result/callback trace. Nil disables it.
	TraceLogger log.Logger

	// SessionID tags every trace event. A random UUID is used when empty.
	SessionID string
}

// Manager is the command facade over one SDK instance.
type Manager struct {
	// mu serialises calls into the SDK handle.
	mu  sync.Mutex
	api sdk.API

	hub    *subscription.Hub[Event]
	bridge *bridge

	logger    *slog.Logger
	trace     log.Logger
	sessionID string

	stateMu sync.Mutex
	started bool
	closed  atomic.Bool
}

// NewManager creates a Manager over api. Call Start to receive events.
func NewManager(api sdk.API, cfg Config) *Manager {
	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	hub := subscription.NewHub[Event]()
	return &Manager{
		api:       api,
		hub:       hub,
		logger:    cfg.Logger,
		trace:     cfg.TraceLogger,
		sessionID: sessionID,
		bridge: &bridge{
			hub:       hub,
			trace:     cfg.TraceLogger,
			sessionID: sessionID,
			logger:    cfg.Logger,
		},
	}
}

// SessionID returns the identifier attached to trace events.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// Start registers the event bridge with the SDK. It may succeed only once.
func (m *Manager) Start() error {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	if m.closed.Load() {
		return ErrClosed
	}
	if m.started {
		return ErrAlreadyStarted
	}

	err := m.call("SetDelegate", nil, nil, func(api sdk.API) sdk.Result {
		return api.SetDelegate(m.bridge)
	})
	if err != nil {
		return err
	}
	m.started = true
	m.debugLog("manager started", "session", m.sessionID)
	return nil
}

// Close ends every event subscription after its queued events drain.
// Commands issued after Close fail with ErrClosed. Close is idempotent.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	m.hub.Close()
	m.debugLog("manager closed", "session", m.sessionID)
	return nil
}

// Events returns a new, independent subscription to the event stream. Only
// events published after the call are delivered. Cancel it when done.
func (m *Manager) Events() (*subscription.Subscription[Event], error) {
	sub, err := m.hub.Subscribe()
	if errors.Is(err, subscription.ErrHubClosed) {
		return nil, ErrClosed
	}
	return sub, err
}

// SDKVersion returns the version string of the vendor SDK.
func (m *Manager) SDKVersion() (string, error) {
	if m.isClosed() {
		return "", ErrClosed
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.api.SDKVersion(), nil
}

// SetOperatingMode selects the transports the SDK uses.
func (m *Manager) SetOperatingMode(mode OperatingMode) error {
	return m.call("SetOperatingMode", nil, map[string]any{"mode": mode.String()}, func(api sdk.API) sdk.Result {
		return api.SetOperationalMode(int32(mode))
	})
}

// Subscribe enables delivery of the event categories in mask.
func (m *Manager) Subscribe(mask EventMask) error {
	return m.call("Subscribe", nil, map[string]any{"mask": mask.String()}, func(api sdk.API) sdk.Result {
		return api.SubscribeForEvents(int32(mask))
	})
}

// Unsubscribe disables delivery of the event categories in mask.
func (m *Manager) Unsubscribe(mask EventMask) error {
	return m.call("Unsubscribe", nil, map[string]any{"mask": mask.String()}, func(api sdk.API) sdk.Result {
		return api.UnsubscribeForEvents(int32(mask))
	})
}

// AvailableReaders lists readers the SDK can connect to.
func (m *Manager) AvailableReaders() ([]ReaderInfo, error) {
	return m.readerList("AvailableReaders", func(api sdk.API, out *[]sdk.ReaderInfo) sdk.Result {
		return api.GetAvailableReadersList(out)
	})
}

// ActiveReaders lists readers with an established session.
func (m *Manager) ActiveReaders() ([]ReaderInfo, error) {
	return m.readerList("ActiveReaders", func(api sdk.API, out *[]sdk.ReaderInfo) sdk.Result {
		return api.GetActiveReadersList(out)
	})
}

func (m *Manager) readerList(name string, fn func(sdk.API, *[]sdk.ReaderInfo) sdk.Result) ([]ReaderInfo, error) {
	var raw []sdk.ReaderInfo
	if err := m.call(name, nil, nil, func(api sdk.API) sdk.Result { return fn(api, &raw) }); err != nil {
		return nil, err
	}
	readers := make([]ReaderInfo, len(raw))
	for i, r := range raw {
		readers[i] = readerInfoFromSDK(r)
	}
	return readers, nil
}

// EstablishSession opens a communication session with a reader.
func (m *Manager) EstablishSession(readerID int32) error {
	return m.call("EstablishSession", &readerID, nil, func(api sdk.API) sdk.Result {
		return api.EstablishCommunicationSession(readerID)
	})
}

// TerminateSession closes the communication session with a reader.
func (m *Manager) TerminateSession(readerID int32) error {
	return m.call("TerminateSession", &readerID, nil, func(api sdk.API) sdk.Result {
		return api.TerminateCommunicationSession(readerID)
	})
}

// EstablishASCIIConnection opens the ASCII protocol channel of a reader.
// The password is passed through unchanged.
func (m *Manager) EstablishASCIIConnection(readerID int32, password string) error {
	return m.call("EstablishASCIIConnection", &readerID, nil, func(api sdk.API) sdk.Result {
		return api.EstablishASCIIConnection(readerID, password)
	})
}

// EnableReaderDetection toggles ReaderAppeared and ReaderDisappeared
// notifications.
func (m *Manager) EnableReaderDetection(enable bool) error {
	return m.call("EnableReaderDetection", nil, map[string]any{"enable": enable}, func(api sdk.API) sdk.Result {
		return api.EnableAvailableReadersDetection(enable)
	})
}

// EnableSessionReestablishment toggles automatic session recovery inside
// the SDK.
func (m *Manager) EnableSessionReestablishment(enable bool) error {
	return m.call("EnableSessionReestablishment", nil, map[string]any{"enable": enable}, func(api sdk.API) sdk.Result {
		return api.EnableAutomaticSessionReestablishment(enable)
	})
}

// LocateReader toggles the locate beep of a reader.
func (m *Manager) LocateReader(readerID int32, enabled bool) error {
	return m.callStatus("LocateReader", &readerID, map[string]any{"enabled": enabled}, func(api sdk.API, status *string) sdk.Result {
		return api.LocateReader(readerID, enabled, status)
	})
}

// StartInventory starts an inventory reporting the given memory bank.
func (m *Manager) StartInventory(readerID int32, bank MemoryBank, report ReportConfig, access AccessConfig) error {
	args := map[string]any{"memoryBank": bank.String(), "report": report, "access": access}
	return m.callStatus("StartInventory", &readerID, args, func(api sdk.API, status *string) sdk.Result {
		return api.StartInventory(readerID, uint32(bank), report.toSDK(), access.toSDK(), status)
	})
}

// StopInventory stops a running inventory.
func (m *Manager) StopInventory(readerID int32) error {
	return m.callStatus("StopInventory", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.StopInventory(readerID, status)
	})
}

// StartRapidRead starts a rapid read.
func (m *Manager) StartRapidRead(readerID int32, report ReportConfig, access AccessConfig) error {
	args := map[string]any{"report": report, "access": access}
	return m.callStatus("StartRapidRead", &readerID, args, func(api sdk.API, status *string) sdk.Result {
		return api.StartRapidRead(readerID, report.toSDK(), access.toSDK(), status)
	})
}

// StopRapidRead stops a running rapid read.
func (m *Manager) StopRapidRead(readerID int32) error {
	return m.callStatus("StopRapidRead", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.StopRapidRead(readerID, status)
	})
}

// StartTagLocationing starts locating the tag with the given EPC. Progress
// arrives as Proximity events.
func (m *Manager) StartTagLocationing(readerID int32, epc string) error {
	return m.callStatus("StartTagLocationing", &readerID, map[string]any{"epc": epc}, func(api sdk.API, status *string) sdk.Result {
		return api.StartTagLocationing(readerID, epc, status)
	})
}

// StopTagLocationing stops tag locationing.
func (m *Manager) StopTagLocationing(readerID int32) error {
	return m.callStatus("StopTagLocationing", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.StopTagLocationing(readerID, status)
	})
}

// FetchTags asks the reader to report the tags buffered in batch mode. They
// arrive as TagRead events.
func (m *Manager) FetchTags(readerID int32) error {
	return m.callStatus("FetchTags", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetTags(readerID, status)
	})
}

// PurgeTags discards the tags buffered on the reader.
func (m *Manager) PurgeTags(readerID int32) error {
	return m.callStatus("PurgeTags", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.PurgeTags(readerID, status)
	})
}

// RequestBatteryStatus asks the reader for a Battery event.
func (m *Manager) RequestBatteryStatus(readerID int32) error {
	return m.call("RequestBatteryStatus", &readerID, nil, func(api sdk.API) sdk.Result {
		return api.RequestBatteryStatus(readerID)
	})
}

// LoadConfigurations makes the SDK refresh its cached reader configurations.
func (m *Manager) LoadConfigurations() error {
	return m.call("LoadConfigurations", nil, nil, func(api sdk.API) sdk.Result {
		return api.GetConfigurations()
	})
}

// SetAccessOperationWaitTimeout sets how long the reader waits for a tag
// during access operations. The timeout is sent in whole milliseconds and
// must fit an int32; negative or larger values are a ParameterError.
func (m *Manager) SetAccessOperationWaitTimeout(readerID int32, timeout time.Duration) error {
	if timeout < 0 || timeout/time.Millisecond > math.MaxInt32 {
		err := &ParameterError{Name: "timeout"}
		m.traceRejected("SetAccessOperationWaitTimeout", readerID, err)
		return err
	}
	ms := int32(timeout / time.Millisecond)
	return m.call("SetAccessOperationWaitTimeout", &readerID, map[string]any{"timeoutMs": ms}, func(api sdk.API) sdk.Result {
		return api.SetAccessCommandOperationWaitTimeout(readerID, ms)
	})
}

// call runs a bare-result SDK call under the command lock.
func (m *Manager) call(name string, readerID *int32, args map[string]any, fn func(sdk.API) sdk.Result) error {
	if m.isClosed() {
		return ErrClosed
	}

	m.traceCommand(name, readerID, args)
	start := time.Now()

	m.mu.Lock()
	res := fn(m.api)
	m.mu.Unlock()

	m.traceResult(name, readerID, res, "", time.Since(start))
	return checkResult(res)
}

// callStatus runs a status-message SDK call under the command lock.
func (m *Manager) callStatus(name string, readerID *int32, args map[string]any, fn func(sdk.API, *string) sdk.Result) error {
	if m.isClosed() {
		return ErrClosed
	}

	m.traceCommand(name, readerID, args)
	start := time.Now()

	var message string
	m.mu.Lock()
	res := fn(m.api, &message)
	m.mu.Unlock()

	m.traceResult(name, readerID, res, message, time.Since(start))
	return checkStatus(res, message)
}

// checkResult maps a bare result code.
func checkResult(r sdk.Result) error {
	if r == sdk.ResultSuccess {
		return nil
	}
	return &ResultError{Status: Status(r)}
}

// checkStatus maps a result code that may come with a message. A failure
// with a message is a StatusError, without one a ResultError.
func checkStatus(r sdk.Result, message string) error {
	if r == sdk.ResultSuccess {
		return nil
	}
	if message != "" {
		return &StatusError{Status: Status(r), Message: message}
	}
	return &ResultError{Status: Status(r)}
}

func (m *Manager) isClosed() bool {
	return m.closed.Load()
}

func (m *Manager) debugLog(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

func (m *Manager) traceCommand(name string, readerID *int32, args map[string]any) {
	m.debugLog("sdk call", "command", name, "reader", readerValue(readerID))
	if m.trace == nil {
		return
	}
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Direction: log.DirectionOut,
		Layer:     log.LayerFacade,
		Category:  log.CategoryCommand,
		ReaderID:  readerID,
		Command:   &log.CommandEvent{Name: name, Args: args},
	})
}

func (m *Manager) traceResult(name string, readerID *int32, res sdk.Result, message string, d time.Duration) {
	status := Status(res)
	if res != sdk.ResultSuccess {
		m.debugLog("sdk call failed", "command", name, "reader", readerValue(readerID), "status", statusLabel(status), "message", message)
	}
	if m.trace == nil {
		return
	}
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Direction: log.DirectionIn,
		Layer:     log.LayerFacade,
		Category:  log.CategoryResult,
		ReaderID:  readerID,
		Result: &log.ResultEvent{
			Name:       name,
			Status:     uint32(res),
			StatusName: statusLabel(status),
			Message:    message,
			Duration:   d,
		},
	})
}

// traceRejected records a command refused before reaching the SDK.
func (m *Manager) traceRejected(name string, readerID int32, err error) {
	m.debugLog("sdk call rejected", "command", name, "reader", readerID, "error", err)
	if m.trace == nil {
		return
	}
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Direction: log.DirectionOut,
		Layer:     log.LayerFacade,
		Category:  log.CategoryError,
		ReaderID:  &readerID,
		Error: &log.ErrorEventData{
			Layer:   log.LayerFacade,
			Message: err.Error(),
			Context: name,
		},
	})
}

func readerValue(readerID *int32) any {
	if readerID == nil {
		return nil
	}
	return *readerID
}
