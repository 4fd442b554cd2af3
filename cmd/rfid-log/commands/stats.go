package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]int
	Readers           map[int32]int
	Commands          map[string]*CommandStats
	Callbacks         map[string]int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// CommandStats holds per-command call statistics.
type CommandStats struct {
	Calls         int
	Failures      int
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// AverageDuration returns the mean SDK call duration.
func (c *CommandStats) AverageDuration() time.Duration {
	if c.Calls == 0 {
		return 0
	}
	return c.TotalDuration / time.Duration(c.Calls)
}

// CollectStats reads every event of path into a Stats value.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]int),
		Readers:           make(map[int32]int),
		Commands:          make(map[string]*CommandStats),
		Callbacks:         make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++
	s.Sessions[event.SessionID]++
	if event.ReaderID != nil {
		s.Readers[*event.ReaderID]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	switch {
	case event.Result != nil:
		cmd := s.command(event.Result.Name)
		cmd.Calls++
		if !event.Result.OK() {
			cmd.Failures++
		}
		cmd.TotalDuration += event.Result.Duration
		if event.Result.Duration > cmd.MaxDuration {
			cmd.MaxDuration = event.Result.Duration
		}
	case event.Callback != nil:
		s.Callbacks[event.Callback.Kind]++
	case event.Error != nil:
		s.Errors++
	}
}

func (s *Stats) command(name string) *CommandStats {
	cmd, ok := s.Commands[name]
	if !ok {
		cmd = &CommandStats{}
		s.Commands[name] = cmd
	}
	return cmd
}

// RunStats analyzes the trace file and prints statistics to w.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return
	}
	fmt.Fprintf(w, "Time range:   %s - %s (%s)\n",
		stats.TimeRange.Start.UTC().Format(timeFormat),
		stats.TimeRange.End.UTC().Format(timeFormat),
		stats.TimeRange.End.Sub(stats.TimeRange.Start))
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintf(w, "Errors:       %d\n", stats.Errors)

	fmt.Fprintln(w, "\nBy layer:")
	for _, l := range []log.Layer{log.LayerFacade, log.LayerBridge, log.LayerService} {
		if n := stats.EventsByLayer[l]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", l, n)
		}
	}

	fmt.Fprintln(w, "\nBy category:")
	for _, c := range []log.Category{log.CategoryCommand, log.CategoryResult, log.CategoryCallback, log.CategoryError} {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", c, n)
		}
	}

	if len(stats.Readers) > 0 {
		fmt.Fprintln(w, "\nBy reader:")
		ids := make([]int32, 0, len(stats.Readers))
		for id := range stats.Readers {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			fmt.Fprintf(w, "  %-8d %d\n", id, stats.Readers[id])
		}
	}

	if len(stats.Commands) > 0 {
		fmt.Fprintln(w, "\nCommands:")
		fmt.Fprintf(w, "  %-28s %6s %6s %12s %12s\n", "NAME", "CALLS", "FAILED", "AVG", "MAX")
		for _, name := range sortedKeys(stats.Commands) {
			c := stats.Commands[name]
			fmt.Fprintf(w, "  %-28s %6d %6d %12s %12s\n",
				name, c.Calls, c.Failures, formatDuration(c.AverageDuration()), formatDuration(c.MaxDuration))
		}
	}

	if len(stats.Callbacks) > 0 {
		fmt.Fprintln(w, "\nCallbacks:")
		for _, kind := range sortedKeys(stats.Callbacks) {
			fmt.Fprintf(w, "  %-16s %d\n", kind, stats.Callbacks[kind])
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
