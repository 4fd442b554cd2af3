// Command rfidctl is an interactive shell for RFID handheld readers.
//
// It drives the reader command facade over the simulated SDK, so every
// command can be tried without hardware.
//
// Usage:
//
//	rfidctl [flags]
//
// Flags:
//
//	-config string      Configuration file path
//	-log-level string   Log level: debug, info, warn, error (overrides the file)
//	-trace-log string   Write a command/callback trace to this .rlog file
//	-events             Print reader events as they arrive (default true)
//	-version            Print the version and exit
//
// Examples:
//
//	# Start with the default simulated reader
//	rfidctl
//
//	# Trace every SDK call for later analysis with rfid-log
//	rfidctl -trace-log /tmp/session.rlog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Syfaro/ZebraRfid/cmd/rfidctl/interactive"
	"github.com/Syfaro/ZebraRfid/internal/config"
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/sim"
	"github.com/Syfaro/ZebraRfid/pkg/version"
)

var (
	configFile  string
	logLevel    string
	traceLog    string
	showEvents  bool
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&traceLog, "trace-log", "", "Write a command/callback trace to this .rlog file")
	flag.BoolVar(&showEvents, "events", true, "Print reader events as they arrive")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("rfidctl", version.Build)
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

	// Log output is redirected through readline once the shell exists.
	out := &switchWriter{w: os.Stderr}
	logger := cfg.Log.NewLogger(out)

	if err := run(cfg, logger, out); err != nil {
		logger.Error("rfidctl failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, out *switchWriter) error {
	simCfg := sim.DefaultConfig()
	simCfg.ReadInterval = cfg.Simulator.ReadInterval
	simCfg.Logger = logger.With("component", "sim")
	simulator := sim.New(simCfg)
	defer simulator.Close()

	trace, closeTrace, err := cfg.Trace.NewTraceLogger(logger)
	if err != nil {
		return err
	}
	defer closeTrace()
	if cfg.Trace.Path != "" {
		logger.Info("tracing enabled", "path", cfg.Trace.Path)
	}

	mgr := rfid.NewManager(simulator, rfid.Config{
		Logger:      logger.With("component", "rfid"),
		TraceLogger: trace,
	})
	defer mgr.Close()

	if err := setup(mgr, cfg); err != nil {
		return err
	}
	logger.Info("manager started", "session", mgr.SessionID())

	shell, err := interactive.New(mgr, simulator, interactive.Config{ShowEvents: showEvents})
	if err != nil {
		return err
	}
	out.Set(shell.Stdout())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go shell.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
	case <-ctx.Done():
	}
	return nil
}

// setup starts the manager and applies the reader section of the
// configuration.
func setup(mgr *rfid.Manager, cfg config.Config) error {
	if err := mgr.Start(); err != nil {
		return fmt.Errorf("start manager: %w", err)
	}

	mode, err := cfg.OperatingMode()
	if err != nil {
		return err
	}
	if err := mgr.SetOperatingMode(mode); err != nil {
		return fmt.Errorf("set operating mode: %w", err)
	}

	mask, err := cfg.EventMask()
	if err != nil {
		return err
	}
	if err := mgr.Subscribe(mask); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	if err := mgr.EnableReaderDetection(cfg.Reader.Detection); err != nil {
		return fmt.Errorf("reader detection: %w", err)
	}
	if err := mgr.EnableSessionReestablishment(cfg.Reader.SessionReestablishment); err != nil {
		return fmt.Errorf("session reestablishment: %w", err)
	}

	for _, id := range cfg.Reader.IDs {
		if err := mgr.EstablishSession(id); err != nil {
			return fmt.Errorf("connect reader %d: %w", id, err)
		}
	}
	return nil
}

// switchWriter forwards writes to a replaceable destination.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
