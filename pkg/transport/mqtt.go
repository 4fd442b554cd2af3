package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// MQTT defaults.
const (
	DefaultMQTTQoS        = 1
	DefaultConnectTimeout = 10 * time.Second
	disconnectQuiesceMs   = 250
)

// MQTTConfig configures an MQTTPublisher.
type MQTTConfig struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883.
	Broker string

	// ClientID defaults to "rfid-bridge-<uuid>".
	ClientID string

	Username string
	Password string

	// QoS defaults to 1.
	QoS *byte

	Retained bool

	// ConnectTimeout bounds the initial connection. Default: 10 seconds.
	ConnectTimeout time.Duration

	Logger *slog.Logger
}

// mqttClient is the subset of paho.Client the publisher uses.
type mqttClient interface {
	Connect() paho.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes events to an MQTT broker.
type MQTTPublisher struct {
	client   mqttClient
	qos      byte
	retained bool
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewMQTTPublisher connects to the broker. paho reconnects automatically
// after the initial connection succeeds.
func NewMQTTPublisher(cfg MQTTConfig) (*MQTTPublisher, error) {
	if cfg.Broker == "" {
		return nil, errors.New("transport: mqtt broker not set")
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "rfid-bridge-" + uuid.NewString()
	}
	p := newMQTTPublisher(nil, cfg)

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetKeepAlive(60 * time.Second).
		SetConnectionLostHandler(p.handleConnectionLost).
		SetOnConnectHandler(p.handleConnect)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	p.client = paho.NewClient(opts)

	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func newMQTTPublisher(client mqttClient, cfg MQTTConfig) *MQTTPublisher {
	qos := byte(DefaultMQTTQoS)
	if cfg.QoS != nil {
		qos = *cfg.QoS
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MQTTPublisher{
		client:   client,
		qos:      qos,
		retained: cfg.Retained,
		timeout:  timeout,
		logger:   logger.With("component", "mqtt"),
	}
}

// connect waits for the first connection. On failure the client is
// disconnected so connect retry stops.
func (p *MQTTPublisher) connect() error {
	token := p.client.Connect()
	if !token.WaitTimeout(p.timeout) {
		p.client.Disconnect(0)
		return fmt.Errorf("mqtt connect: timeout after %v", p.timeout)
	}
	if err := token.Error(); err != nil {
		p.client.Disconnect(0)
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

// Publish sends payload and waits for the broker acknowledgement or ctx.
func (p *MQTTPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	token := p.client.Publish(topic, p.qos, p.retained, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker. Safe to call multiple times.
func (p *MQTTPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.client.Disconnect(disconnectQuiesceMs)
	return nil
}

func (p *MQTTPublisher) handleConnect(paho.Client) {
	p.logger.Info("connected")
}

func (p *MQTTPublisher) handleConnectionLost(_ paho.Client, err error) {
	p.logger.Warn("connection lost", "error", err)
}

var _ Publisher = (*MQTTPublisher)(nil)
