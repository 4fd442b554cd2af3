package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Syfaro/ZebraRfid/internal/config"
	"github.com/Syfaro/ZebraRfid/pkg/discovery"
	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/persistence"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/service"
	"github.com/Syfaro/ZebraRfid/pkg/transport"
	"github.com/Syfaro/ZebraRfid/pkg/version"
)

// Replaced in tests.
var (
	findBroker = discovery.FirstBroker
	newMQTT    = func(cfg transport.MQTTConfig) (transport.Publisher, error) {
		return transport.NewMQTTPublisher(cfg)
	}
	newKafka = func(cfg transport.KafkaConfig) (transport.Publisher, error) {
		return transport.NewKafkaPublisher(cfg)
	}
)

// serviceConfig maps the file configuration onto the bridge service.
func serviceConfig(cfg config.Config, logger *slog.Logger, trace log.Logger) (service.Config, error) {
	mask, err := cfg.EventMask()
	if err != nil {
		return service.Config{}, err
	}

	readers := make([]service.ReaderConfig, len(cfg.Reader.IDs))
	for i, id := range cfg.Reader.IDs {
		readers[i] = service.ReaderConfig{ID: id, AutoReconnect: cfg.Reader.AutoReconnect}
	}

	return service.Config{
		Readers:         readers,
		EventMask:       mask,
		ReaderDetection: cfg.Reader.Detection,
		TopicPrefix:     cfg.MQTT.TopicPrefix,
		Logger:          logger,
		TraceLogger:     trace,
	}, nil
}

// buildPublisher connects every configured sink. With none configured the
// bridge still journals and traces, publishing to a NopPublisher.
func buildPublisher(ctx context.Context, cfg config.Config, logger *slog.Logger) (transport.Publisher, error) {
	var pubs []transport.Publisher

	broker := cfg.MQTT.Broker
	if broker == "" && cfg.MQTT.Discover {
		found, err := findBroker(ctx, discovery.DefaultBrowserConfig())
		if err != nil {
			return nil, fmt.Errorf("discover mqtt broker: %w", err)
		}
		logger.Info("discovered mqtt broker", "broker", found)
		broker = found
	}
	if broker != "" {
		qos := cfg.MQTT.QoS
		p, err := newMQTT(transport.MQTTConfig{
			Broker:   broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      &qos,
			Logger:   logger.With("component", "mqtt"),
		})
		if err != nil {
			return nil, fmt.Errorf("connect mqtt: %w", err)
		}
		pubs = append(pubs, p)
	}

	if len(cfg.Kafka.Brokers) > 0 {
		p, err := newKafka(transport.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		if err != nil {
			closeAll(pubs)
			return nil, fmt.Errorf("create kafka writer: %w", err)
		}
		pubs = append(pubs, p)
	}

	if len(pubs) == 0 {
		logger.Warn("no publisher configured, events are only journaled")
		return transport.NopPublisher{}, nil
	}
	return transport.NewMultiPublisher(pubs...), nil
}

func closeAll(pubs []transport.Publisher) {
	for _, p := range pubs {
		_ = p.Close()
	}
}

// openJournal opens the SQLite journal and creates its tables.
func openJournal(ctx context.Context, path string) (*persistence.Store, error) {
	store, err := persistence.Open(path)
	if err != nil {
		return nil, err
	}
	if err := store.InitSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// pruneLoop deletes reads older than retention once per interval until ctx
// is done.
func pruneLoop(ctx context.Context, store *persistence.Store, retention, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.PruneReads(ctx, now.Add(-retention))
			if err != nil {
				logger.Warn("prune reads failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("pruned journaled reads", "count", n)
			}
		}
	}
}

// logStats logs the service counters once per interval until ctx is done.
func logStats(ctx context.Context, svc *service.BridgeService, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st := svc.Stats()
			logger.Info("bridge stats",
				"state", st.State,
				"received", st.EventsReceived,
				"published", st.EventsPublished,
				"publish_errors", st.PublishErrors,
				"journaled", st.ReadsJournaled,
				"reconnects", st.Reconnects,
				"readers", st.Readers)
		}
	}
}

// checkSDK logs the SDK version and warns when it is outside the supported
// range. An unsupported SDK is not fatal.
func checkSDK(mgr *rfid.Manager, logger *slog.Logger) {
	raw, err := mgr.SDKVersion()
	if err != nil {
		logger.Warn("sdk version unavailable", "error", err)
		return
	}
	v, err := version.CheckSDK(raw)
	if err != nil {
		logger.Warn("unsupported sdk", "version", raw, "error", err)
		return
	}
	logger.Info("sdk ready", "version", v.String(), "build", version.Build)
}
