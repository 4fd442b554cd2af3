// Package log provides a structured trace of the traffic between the
// adapter and the vendor RFID SDK.
//
// Every facade call produces a Command event (toward the SDK) and a Result
// event (status code, message and duration coming back). Every delegate
// callback produces a Callback event. This is separate from operational
// logging (slog): the trace is a complete, machine-readable record meant
// for replaying a field problem after the fact.
//
// # Basic Usage
//
//	// For development: trace to console via slog
//	cfg.TraceLogger = log.NewSlogAdapter(slog.Default())
//
//	// For field capture: binary file
//	cfg.TraceLogger, _ = log.NewFileLogger("/var/log/rfid/reader.rlog")
//
//	// Both
//	cfg.TraceLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a concatenation of CBOR-encoded Event values with integer
// keys, conventionally named *.rlog. The rfid-log command views, filters,
// exports and summarises them.
package log
