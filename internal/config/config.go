// Package config loads the YAML configuration shared by the rfid commands.
//
// Values are resolved in three layers: built-in defaults, then the YAML
// file, then RFID_* environment variables. Validate runs last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// Environment variables that override file values.
const (
	EnvLogLevel     = "RFID_LOG_LEVEL"
	EnvMQTTBroker   = "RFID_MQTT_BROKER"
	EnvKafkaBrokers = "RFID_KAFKA_BROKERS"
	EnvStorePath    = "RFID_STORE_PATH"
	EnvTraceLog     = "RFID_TRACE_LOG"
)

// Config is the top-level configuration document.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Trace     TraceConfig     `yaml:"trace"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Reader    ReaderConfig    `yaml:"reader"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Store     StoreConfig     `yaml:"store"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// TraceConfig configures the command/callback trace.
type TraceConfig struct {
	// Path of the .rlog file. Empty disables the file trace.
	Path string `yaml:"path"`

	// Console also writes trace events to the operational logger at debug
	// level.
	Console bool `yaml:"console"`
}

// SimulatorConfig configures the simulated SDK.
type SimulatorConfig struct {
	ReadInterval time.Duration `yaml:"read_interval"`
}

// ReaderConfig selects the readers to drive and the events to receive.
type ReaderConfig struct {
	IDs                    []int32 `yaml:"ids"`
	Events                 string  `yaml:"events"`
	OperatingMode          string  `yaml:"operating_mode"`
	AutoReconnect          bool    `yaml:"auto_reconnect"`
	Detection              bool    `yaml:"detection"`
	SessionReestablishment bool    `yaml:"session_reestablishment"`
}

// MQTTConfig configures the MQTT publisher.
type MQTTConfig struct {
	// Broker URL, e.g. tcp://localhost:1883. Empty disables MQTT unless
	// Discover is set.
	Broker string `yaml:"broker"`

	// Discover looks the broker up via mDNS when Broker is empty.
	Discover bool `yaml:"discover"`

	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
}

// KafkaConfig configures the Kafka publisher. No brokers disables it.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// StoreConfig configures the SQLite journal. Empty path disables it.
type StoreConfig struct {
	Path string `yaml:"path"`

	// Retention prunes journaled reads older than this. Zero keeps them.
	Retention time.Duration `yaml:"retention"`
}

// LoadError describes a configuration that could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info", Format: "text"},
		Simulator: SimulatorConfig{ReadInterval: 100 * time.Millisecond},
		Reader: ReaderConfig{
			IDs:           []int32{1},
			Events:        "all",
			OperatingMode: "all",
			AutoReconnect: true,
			Detection:     true,
		},
		MQTT: MQTTConfig{TopicPrefix: "rfid", QoS: 1},
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	return cfg, nil
}

// Load reads path, applies environment overrides and validates the result.
// An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &LoadError{File: path, Message: "failed to read file", Cause: err}
		}
		cfg, err = Parse(data)
		if err != nil {
			var le *LoadError
			if errors.As(err, &le) {
				le.File = path
			}
			return Config{}, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, &LoadError{File: path, Message: "invalid configuration", Cause: err}
	}
	return cfg, nil
}

// ApplyEnv overrides fields from RFID_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvMQTTBroker); ok {
		c.MQTT.Broker = v
	}
	if v, ok := lookup(EnvKafkaBrokers); ok {
		c.Kafka.Brokers = splitList(v)
	}
	if v, ok := lookup(EnvStorePath); ok {
		c.Store.Path = v
	}
	if v, ok := lookup(EnvTraceLog); ok {
		c.Trace.Path = v
	}
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: must be text or json, got %q", c.Log.Format))
	}
	if c.Simulator.ReadInterval <= 0 {
		errs = append(errs, errors.New("simulator.read_interval: must be positive"))
	}
	if len(c.Reader.IDs) == 0 {
		errs = append(errs, errors.New("reader.ids: at least one reader is required"))
	}
	seen := make(map[int32]bool, len(c.Reader.IDs))
	for _, id := range c.Reader.IDs {
		if id <= 0 {
			errs = append(errs, fmt.Errorf("reader.ids: invalid reader id %d", id))
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("reader.ids: duplicate reader id %d", id))
		}
		seen[id] = true
	}
	if _, err := c.EventMask(); err != nil {
		errs = append(errs, fmt.Errorf("reader.events: %w", err))
	}
	if _, err := c.OperatingMode(); err != nil {
		errs = append(errs, err)
	}
	if c.MQTT.QoS > 2 {
		errs = append(errs, fmt.Errorf("mqtt.qos: must be 0, 1 or 2, got %d", c.MQTT.QoS))
	}
	if c.MQTT.Broker != "" && !strings.Contains(c.MQTT.Broker, "://") {
		errs = append(errs, fmt.Errorf("mqtt.broker: %q is not a URL", c.MQTT.Broker))
	}
	if c.Store.Retention < 0 {
		errs = append(errs, errors.New("store.retention: must not be negative"))
	}
	for _, b := range c.Kafka.Brokers {
		if !strings.Contains(b, ":") {
			errs = append(errs, fmt.Errorf("kafka.brokers: %q needs host:port", b))
		}
	}
	return errors.Join(errs...)
}

// EventMask parses Reader.Events.
func (c *Config) EventMask() (rfid.EventMask, error) {
	return rfid.ParseEventMask(c.Reader.Events)
}

// OperatingMode parses Reader.OperatingMode.
func (c *Config) OperatingMode() (rfid.OperatingMode, error) {
	switch strings.ToLower(c.Reader.OperatingMode) {
	case "mfi":
		return rfid.OperatingModeMFi, nil
	case "btle":
		return rfid.OperatingModeBTLE, nil
	case "all", "":
		return rfid.OperatingModeAll, nil
	default:
		return 0, fmt.Errorf("reader.operating_mode: unknown mode %q", c.Reader.OperatingMode)
	}
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level: unknown level %q", s)
	}
}

// NewLogger builds the operational logger described by c.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewTraceLogger builds the trace sink described by c: the .rlog file, the
// operational logger, or both. It returns a nil Logger when tracing is off.
// The returned close func flushes and closes the file and is never nil.
func (c TraceConfig) NewTraceLogger(logger *slog.Logger) (log.Logger, func() error, error) {
	noop := func() error { return nil }

	var file *log.FileLogger
	if c.Path != "" {
		fl, err := log.NewFileLogger(c.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open trace log: %w", err)
		}
		file = fl
	}

	var console log.Logger
	if c.Console && logger != nil {
		console = log.NewSlogAdapter(logger)
	}

	switch {
	case file != nil && console != nil:
		return log.NewMultiLogger(file, console), file.Close, nil
	case file != nil:
		return file, file.Close, nil
	case console != nil:
		return console, noop, nil
	}
	return nil, noop, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
