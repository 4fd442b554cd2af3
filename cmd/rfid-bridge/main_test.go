package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Syfaro/ZebraRfid/internal/config"
	"github.com/Syfaro/ZebraRfid/pkg/discovery"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/transport"
)

type fakePublisher struct {
	closed bool
}

func (p *fakePublisher) Publish(context.Context, string, []byte) error { return nil }

func (p *fakePublisher) Close() error {
	p.closed = true
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubPublishers replaces the publisher constructors for one test.
func stubPublishers(t *testing.T, mqtt, kafka func() (transport.Publisher, error)) {
	t.Helper()
	oldMQTT, oldKafka, oldFind := newMQTT, newKafka, findBroker
	t.Cleanup(func() { newMQTT, newKafka, findBroker = oldMQTT, oldKafka, oldFind })

	newMQTT = func(transport.MQTTConfig) (transport.Publisher, error) { return mqtt() }
	newKafka = func(transport.KafkaConfig) (transport.Publisher, error) { return kafka() }
}

func TestServiceConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Reader.IDs = []int32{1, 7}
	cfg.Reader.AutoReconnect = false
	cfg.Reader.Events = "read,battery"
	cfg.MQTT.TopicPrefix = "dock"

	sc, err := serviceConfig(cfg, quietLogger(), nil)
	if err != nil {
		t.Fatalf("serviceConfig: %v", err)
	}
	if len(sc.Readers) != 2 || sc.Readers[1].ID != 7 || sc.Readers[1].AutoReconnect {
		t.Errorf("Readers = %+v", sc.Readers)
	}
	if sc.EventMask != rfid.EventMaskRead|rfid.EventMaskBattery {
		t.Errorf("EventMask = %v", sc.EventMask)
	}
	if !sc.ReaderDetection {
		t.Error("ReaderDetection should follow reader.detection")
	}
	if sc.TopicPrefix != "dock" {
		t.Errorf("TopicPrefix = %q", sc.TopicPrefix)
	}
}

func TestServiceConfigBadMask(t *testing.T) {
	cfg := config.Default()
	cfg.Reader.Events = "read,bogus"

	if _, err := serviceConfig(cfg, quietLogger(), nil); err == nil {
		t.Error("expected error for unknown event name")
	}
}

func TestBuildPublisherNone(t *testing.T) {
	pub, err := buildPublisher(context.Background(), config.Default(), quietLogger())
	if err != nil {
		t.Fatalf("buildPublisher: %v", err)
	}
	if _, ok := pub.(transport.NopPublisher); !ok {
		t.Errorf("publisher = %T, want NopPublisher", pub)
	}
}

func TestBuildPublisherBoth(t *testing.T) {
	m, k := &fakePublisher{}, &fakePublisher{}
	stubPublishers(t,
		func() (transport.Publisher, error) { return m, nil },
		func() (transport.Publisher, error) { return k, nil })

	cfg := config.Default()
	cfg.MQTT.Broker = "tcp://localhost:1883"
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	pub, err := buildPublisher(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("buildPublisher: %v", err)
	}
	multi, ok := pub.(*transport.MultiPublisher)
	if !ok {
		t.Fatalf("publisher = %T, want *MultiPublisher", pub)
	}
	if multi.Len() != 2 {
		t.Errorf("Len() = %d, want 2", multi.Len())
	}
	_ = pub.Close()
	if !m.closed || !k.closed {
		t.Error("Close should reach every publisher")
	}
}

func TestBuildPublisherDiscovery(t *testing.T) {
	var gotBroker string
	stubPublishers(t, nil, nil)
	newMQTT = func(c transport.MQTTConfig) (transport.Publisher, error) {
		gotBroker = c.Broker
		return &fakePublisher{}, nil
	}
	findBroker = func(context.Context, discovery.BrowserConfig) (string, error) {
		return "tcp://10.0.0.5:1883", nil
	}

	cfg := config.Default()
	cfg.MQTT.Discover = true

	if _, err := buildPublisher(context.Background(), cfg, quietLogger()); err != nil {
		t.Fatalf("buildPublisher: %v", err)
	}
	if gotBroker != "tcp://10.0.0.5:1883" {
		t.Errorf("broker = %q", gotBroker)
	}
}

func TestBuildPublisherDiscoveryFails(t *testing.T) {
	stubPublishers(t, nil, nil)
	findBroker = func(context.Context, discovery.BrowserConfig) (string, error) {
		return "", discovery.ErrNoBroker
	}

	cfg := config.Default()
	cfg.MQTT.Discover = true

	if _, err := buildPublisher(context.Background(), cfg, quietLogger()); !errors.Is(err, discovery.ErrNoBroker) {
		t.Errorf("err = %v, want ErrNoBroker", err)
	}
}

func TestBuildPublisherKafkaFailureClosesMQTT(t *testing.T) {
	m := &fakePublisher{}
	stubPublishers(t,
		func() (transport.Publisher, error) { return m, nil },
		func() (transport.Publisher, error) { return nil, errors.New("no brokers reachable") })

	cfg := config.Default()
	cfg.MQTT.Broker = "tcp://localhost:1883"
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	if _, err := buildPublisher(context.Background(), cfg, quietLogger()); err == nil {
		t.Fatal("expected kafka error")
	}
	if !m.closed {
		t.Error("mqtt publisher should be closed when kafka fails")
	}
}

func TestPruneLoop(t *testing.T) {
	ctx := context.Background()
	store, err := openJournal(ctx, filepath.Join(t.TempDir(), "reads.db"))
	if err != nil {
		t.Fatalf("openJournal: %v", err)
	}
	defer store.Close()

	old := time.Now().Add(-2 * time.Hour)
	if err := store.RecordRead(ctx, 1, rfid.TagData{EPC: "E28011700000020F5A8C1A01"}, old); err != nil {
		t.Fatalf("RecordRead: %v", err)
	}
	if err := store.RecordRead(ctx, 1, rfid.TagData{EPC: "E28011700000020F5A8C1A02"}, time.Now()); err != nil {
		t.Fatalf("RecordRead: %v", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		pruneLoop(loopCtx, store, time.Hour, 10*time.Millisecond, quietLogger())
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		reads, err := store.RecentReads(ctx, 10)
		if err != nil {
			t.Fatalf("RecentReads: %v", err)
		}
		if len(reads) == 1 {
			if reads[0].EPC != "E28011700000020F5A8C1A02" {
				t.Errorf("kept %q, want the recent read", reads[0].EPC)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("old read not pruned, %d reads left", len(reads))
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	<-done
}

func TestRunShutsDownOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Simulator.ReadInterval = 5 * time.Millisecond
	cfg.Store.Path = filepath.Join(t.TempDir(), "reads.db")
	cfg.Store.Retention = time.Hour
	cfg.Trace.Path = filepath.Join(t.TempDir(), "bridge.rlog")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := run(ctx, cfg, quietLogger()); err != nil {
		t.Errorf("run: %v", err)
	}
}
