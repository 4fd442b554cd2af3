package transport

import (
	"context"
	"errors"
	"strings"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("transport: publisher closed")

// DefaultTopicPrefix is used when no prefix is configured.
const DefaultTopicPrefix = "rfid"

// Publisher sends encoded events to a broker.
type Publisher interface {
	// Publish sends payload under topic. topic is the full MQTT-style topic.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Close flushes pending messages and releases the connection.
	Close() error
}

// Topic joins a prefix and an event topic suffix.
func Topic(prefix, suffix string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return suffix
	}
	return prefix + "/" + suffix
}

// MultiPublisher publishes to every wrapped publisher.
type MultiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher creates a publisher that fans out to publishers.
// Nil entries are skipped.
func NewMultiPublisher(publishers ...Publisher) *MultiPublisher {
	m := &MultiPublisher{}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

// Len returns the number of wrapped publishers.
func (m *MultiPublisher) Len() int {
	return len(m.publishers)
}

// Publish sends to every publisher, even when an earlier one fails.
// The returned error joins every failure.
func (m *MultiPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, topic, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every publisher.
func (m *MultiPublisher) Close() error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NopPublisher discards everything. The bridge uses it when no broker is
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }
func (NopPublisher) Close() error                                  { return nil }

var (
	_ Publisher = (*MultiPublisher)(nil)
	_ Publisher = NopPublisher{}
)
