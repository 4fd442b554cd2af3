package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rfid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mask, err := cfg.EventMask()
	require.NoError(t, err)
	assert.Equal(t, rfid.EventMaskAll, mask)

	mode, err := cfg.OperatingMode()
	require.NoError(t, err)
	assert.Equal(t, rfid.OperatingModeAll, mode)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
trace:
  path: /var/log/rfid/bridge.rlog
simulator:
  read_interval: 250ms
reader:
  ids: [2, 3]
  events: read,battery,session
  operating_mode: btle
  auto_reconnect: false
mqtt:
  broker: tcp://broker.local:1883
  topic_prefix: warehouse/dock4
kafka:
  brokers: [kafka-1:9092, kafka-2:9092]
  topic: tag-events
store:
  path: /var/lib/rfid/journal.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/log/rfid/bridge.rlog", cfg.Trace.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulator.ReadInterval)
	assert.Equal(t, []int32{2, 3}, cfg.Reader.IDs)
	assert.False(t, cfg.Reader.AutoReconnect)
	assert.True(t, cfg.Reader.Detection, "unset keys keep defaults")
	assert.Equal(t, "warehouse/dock4", cfg.MQTT.TopicPrefix)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "tag-events", cfg.Kafka.Topic)
	assert.Equal(t, "/var/lib/rfid/journal.db", cfg.Store.Path)

	mode, err := cfg.OperatingMode()
	require.NoError(t, err)
	assert.Equal(t, rfid.OperatingModeBTLE, mode)

	mask, err := cfg.EventMask()
	require.NoError(t, err)
	assert.True(t, mask.Has(rfid.EventMaskSessionEstablishment|rfid.EventMaskSessionTermination))
	assert.True(t, mask.Has(rfid.EventMaskRead|rfid.EventMaskBattery))
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, cfg.Reader.IDs)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.File, "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "mqtt:\n  brokr: tcp://x:1883\n"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "failed to parse YAML", le.Message)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvMQTTBroker, "tcp://env-broker:1883")
	t.Setenv(EnvKafkaBrokers, "k1:9092, k2:9092,")
	t.Setenv(EnvStorePath, "/tmp/env.db")
	t.Setenv(EnvTraceLog, "/tmp/env.rlog")

	cfg, err := Load(writeConfig(t, "log:\n  level: debug\nmqtt:\n  broker: tcp://file:1883\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "tcp://env-broker:1883", cfg.MQTT.Broker)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "/tmp/env.db", cfg.Store.Path)
	assert.Equal(t, "/tmp/env.rlog", cfg.Trace.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"interval", func(c *Config) { c.Simulator.ReadInterval = 0 }, "simulator.read_interval"},
		{"no readers", func(c *Config) { c.Reader.IDs = nil }, "at least one reader"},
		{"bad id", func(c *Config) { c.Reader.IDs = []int32{0} }, "invalid reader id"},
		{"duplicate id", func(c *Config) { c.Reader.IDs = []int32{1, 1} }, "duplicate reader id"},
		{"events", func(c *Config) { c.Reader.Events = "read,teleport" }, "reader.events"},
		{"mode", func(c *Config) { c.Reader.OperatingMode = "usb" }, "reader.operating_mode"},
		{"qos", func(c *Config) { c.MQTT.QoS = 3 }, "mqtt.qos"},
		{"broker", func(c *Config) { c.MQTT.Broker = "localhost" }, "mqtt.broker"},
		{"kafka", func(c *Config) { c.Kafka.Brokers = []string{"kafka"} }, "kafka.brokers"},
		{"retention", func(c *Config) { c.Store.Retention = -time.Hour }, "store.retention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.MQTT.QoS = 9
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "mqtt.qos")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewTraceLoggerDisabled(t *testing.T) {
	trace, closeFn, err := TraceConfig{}.NewTraceLogger(nil)
	require.NoError(t, err)
	assert.Nil(t, trace)
	assert.NoError(t, closeFn())
}

func TestNewTraceLoggerFileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path := filepath.Join(t.TempDir(), "trace.rlog")

	trace, closeFn, err := TraceConfig{Path: path, Console: true}.NewTraceLogger(logger)
	require.NoError(t, err)
	require.NotNil(t, trace)

	reader := int32(1)
	trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: "s1",
		Direction: log.DirectionOut,
		Layer:     log.LayerFacade,
		Category:  log.CategoryCommand,
		ReaderID:  &reader,
		Command:   &log.CommandEvent{Name: "EstablishSession"},
	})
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), "rfid-trace")
	assert.Contains(t, buf.String(), "EstablishSession")

	r, err := log.NewReader(path)
	require.NoError(t, err)
	defer r.Close()
	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "EstablishSession", ev.Name())
}

func TestNewTraceLoggerBadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, closeFn, err := TraceConfig{Path: filepath.Join(blocker, "trace.rlog")}.NewTraceLogger(nil)
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
