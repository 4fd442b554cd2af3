package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/connection"
	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// Service errors.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrAlreadyStarted = errors.New("service already started")
	ErrUnknownReader  = errors.New("reader not configured")
)

// ServiceState represents the service state.
type ServiceState uint8

const (
	// StateIdle - service created but not started.
	StateIdle ServiceState = iota

	// StateStarting - service is starting up.
	StateStarting

	// StateRunning - service is running normally.
	StateRunning

	// StateStopping - service is shutting down.
	StateStopping

	// StateStopped - service has stopped.
	StateStopped
)

// String returns the state name.
func (s ServiceState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateStarting:
		return "STARTING"
	case StateRunning:
		return "RUNNING"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// ReaderConfig configures one kept reader.
type ReaderConfig struct {
	ID            int32
	AutoReconnect bool
}

// Config configures a BridgeService.
type Config struct {
	// Readers whose sessions the service establishes and keeps.
	Readers []ReaderConfig

	// EventMask is subscribed on Start. Zero means EventMaskAll.
	EventMask rfid.EventMask

	// ReaderDetection enables ReaderAppeared/ReaderDisappeared events.
	ReaderDetection bool

	// TopicPrefix is prepended to every event topic. Default: "rfid".
	TopicPrefix string

	// PublishTimeout bounds one publish. Default: 5 seconds.
	PublishTimeout time.Duration

	// Backoff configures keeper reconnects.
	Backoff connection.BackoffConfig

	Logger *slog.Logger

	// TraceLogger receives publish and journal failures as service-layer
	// error events. Nil disables them.
	TraceLogger log.Logger
}

// Stats is a snapshot of the service counters.
type Stats struct {
	State           ServiceState
	EventsReceived  int64
	EventsPublished int64
	PublishErrors   int64
	ReadsJournaled  int64
	JournalErrors   int64
	Reconnects      int64

	// EventsByKind counts received events per rfid event kind.
	EventsByKind map[string]int64

	// Readers maps reader id to its keeper state.
	Readers map[int32]string
}
