package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/logbridge/core"
)

// SlogHandler writes entries to any log/slog.Handler, so bridged native
// messages can share the application's slog pipeline.
type SlogHandler struct {
	handler slog.Handler
}

// NewSlogHandler creates a handler that feeds h
func NewSlogHandler(h slog.Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Handle converts the entry to a slog.Record
func (s *SlogHandler) Handle(entry *core.Entry) error {
	ctx := context.Background()
	level := slogLevel(entry.Level)
	if !s.handler.Enabled(ctx, level) {
		return nil
	}

	record := slog.NewRecord(entry.Time, level, entry.Message, 0)
	record.AddAttrs(slog.String("source", entry.Source))
	if entry.Truncated {
		record.AddAttrs(slog.Bool("truncated", true))
	}
	return s.handler.Handle(ctx, record)
}

// Close is a no-op; slog handlers have no lifecycle
func (s *SlogHandler) Close() error {
	return nil
}

func slogLevel(l core.Level) slog.Level {
	switch l {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
