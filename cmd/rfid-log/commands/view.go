// Package commands implements the rfid-log CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/log"
)

const timeFormat = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session] [reader:N] DIRECTION LAYER Type name
	ts := event.Timestamp.UTC().Format(timeFormat)
	reader := "-"
	if event.ReaderID != nil {
		reader = fmt.Sprintf("%d", *event.ReaderID)
	}

	fmt.Fprintf(w, "%s [%s] [reader:%s] %-3s %s %s %s\n",
		ts, shortenSessionID(event.SessionID), reader,
		event.Direction.String(), event.Layer.String(), typeLabel(event), event.Name())

	switch {
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Result != nil:
		formatResultDetails(w, event.Result)
	case event.Callback != nil:
		formatCallbackDetails(w, event.Callback)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

func typeLabel(event log.Event) string {
	switch {
	case event.Command != nil:
		return "Command"
	case event.Result != nil:
		return "Result"
	case event.Callback != nil:
		return "Callback"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	if len(cmd.Args) == 0 {
		return
	}
	keys := make([]string, 0, len(cmd.Args))
	for k := range cmd.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %v\n", k, cmd.Args[k])
	}
}

func formatResultDetails(w io.Writer, res *log.ResultEvent) {
	fmt.Fprintf(w, "  Status: %s (%d)\n", res.StatusName, res.Status)
	if res.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", res.Message)
	}
	if res.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(res.Duration))
	}
}

func formatCallbackDetails(w io.Writer, cb *log.CallbackEvent) {
	if cb.Payload == nil {
		return
	}
	payloadJSON, err := json.Marshal(cb.Payload)
	if err == nil {
		fmt.Fprintf(w, "  Payload: %s\n", string(payloadJSON))
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer name (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "facade":
		return log.LayerFacade, nil
	case "bridge":
		return log.LayerBridge, nil
	case "service":
		return log.LayerService, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be facade, bridge, or service)", s)
	}
}

// ParseDirectionFlag parses a direction name (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "result":
		return log.CategoryResult, nil
	case "callback":
		return log.CategoryCallback, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be command, result, callback, or error)", s)
	}
}

// RunView prints every event matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
