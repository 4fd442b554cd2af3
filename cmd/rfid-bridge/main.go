// Command rfid-bridge forwards RFID reader events to MQTT and Kafka and
// journals tag reads to SQLite.
//
// The bridge keeps the configured reader sessions established, reconnecting
// with exponential backoff when a reader drops out.
//
// Usage:
//
//	rfid-bridge [flags]
//
// Flags:
//
//	-config string      Configuration file path
//	-log-level string   Log level: debug, info, warn, error (overrides the file)
//	-trace-log string   Write a command/callback trace to this .rlog file
//	-stats duration     Interval for logging bridge statistics (default 1m)
//	-version            Print the version and exit
//
// Examples:
//
//	# Publish to a local broker
//	RFID_MQTT_BROKER=tcp://localhost:1883 rfid-bridge
//
//	# Use a configuration file and journal reads
//	rfid-bridge -config /etc/rfid/bridge.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Syfaro/ZebraRfid/internal/config"
	"github.com/Syfaro/ZebraRfid/pkg/persistence"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/service"
	"github.com/Syfaro/ZebraRfid/pkg/sim"
	"github.com/Syfaro/ZebraRfid/pkg/version"
)

// pruneInterval is how often expired reads are deleted.
const pruneInterval = time.Hour

var (
	configFile    string
	logLevel      string
	traceLog      string
	statsInterval time.Duration
	showVersion   bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&traceLog, "trace-log", "", "Write a command/callback trace to this .rlog file")
	flag.DurationVar(&statsInterval, "stats", time.Minute, "Interval for logging bridge statistics")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("rfid-bridge", version.Build)
		return
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if traceLog != "" {
		cfg.Trace.Path = traceLog
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("bridge failed", "error", err)
		os.Exit(1)
	}
	logger.Info("goodbye")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	trace, closeTrace, err := cfg.Trace.NewTraceLogger(logger)
	if err != nil {
		return err
	}
	defer closeTrace()
	if cfg.Trace.Path != "" {
		logger.Info("tracing enabled", "path", cfg.Trace.Path)
	}

	simCfg := sim.DefaultConfig()
	simCfg.ReadInterval = cfg.Simulator.ReadInterval
	simCfg.Logger = logger.With("component", "sim")
	simulator := sim.New(simCfg)
	defer simulator.Close()

	mgr := rfid.NewManager(simulator, rfid.Config{
		Logger:      logger.With("component", "rfid"),
		TraceLogger: trace,
	})
	defer mgr.Close()

	if err := mgr.Start(); err != nil {
		return fmt.Errorf("start manager: %w", err)
	}
	checkSDK(mgr, logger)
	mode, err := cfg.OperatingMode()
	if err != nil {
		return err
	}
	if err := mgr.SetOperatingMode(mode); err != nil {
		return fmt.Errorf("set operating mode: %w", err)
	}
	if err := mgr.EnableSessionReestablishment(cfg.Reader.SessionReestablishment); err != nil {
		return fmt.Errorf("session reestablishment: %w", err)
	}

	pub, err := buildPublisher(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pub.Close()

	// A nil *Store must not become a non-nil Journal.
	var journal service.Journal
	if cfg.Store.Path != "" {
		store, err := openJournal(ctx, cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer store.Close()
		journal = store
		logger.Info("journaling reads", "path", cfg.Store.Path)
	}

	// Background loops stop before the store closes.
	loopCtx, stopLoops := context.WithCancel(ctx)
	var loops sync.WaitGroup
	defer func() {
		stopLoops()
		loops.Wait()
	}()

	if store, ok := journal.(*persistence.Store); ok && cfg.Store.Retention > 0 {
		loops.Add(1)
		go func() {
			defer loops.Done()
			pruneLoop(loopCtx, store, cfg.Store.Retention, pruneInterval, logger)
		}()
	}

	svcCfg, err := serviceConfig(cfg, logger.With("component", "service"), trace)
	if err != nil {
		return err
	}
	svc := service.NewBridgeService(mgr, pub, journal, svcCfg)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start bridge: %w", err)
	}
	logger.Info("bridge started", "session", mgr.SessionID(), "readers", cfg.Reader.IDs)

	if statsInterval > 0 {
		loops.Add(1)
		go func() {
			defer loops.Done()
			logStats(loopCtx, svc, statsInterval, logger)
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")
	return svc.Stop()
}
