package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.ReaderID != nil {
		attrs = append(attrs, slog.Int("reader", int(*event.ReaderID)))
	}

	switch {
	case event.Command != nil:
		attrs = append(attrs, slog.String("command", event.Command.Name))
		if len(event.Command.Args) > 0 {
			attrs = append(attrs, slog.Any("args", event.Command.Args))
		}
	case event.Result != nil:
		attrs = append(attrs,
			slog.String("command", event.Result.Name),
			slog.String("status", event.Result.StatusName),
			slog.Duration("duration", event.Result.Duration),
		)
		if event.Result.Message != "" {
			attrs = append(attrs, slog.String("message", event.Result.Message))
		}
	case event.Callback != nil:
		attrs = append(attrs, slog.String("kind", event.Callback.Kind))
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "rfid-trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
