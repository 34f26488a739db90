package handler

import (
	"github.com/philipp01105/logbridge/core"
	"github.com/rs/zerolog"
)

// ZerologHandler writes entries to a zerolog.Logger
type ZerologHandler struct {
	logger zerolog.Logger
}

// NewZerologHandler creates a handler that logs through l
func NewZerologHandler(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: l}
}

// Handle writes the entry. Disabled levels yield a nil event, which
// zerolog treats as a no-op.
func (h *ZerologHandler) Handle(entry *core.Entry) error {
	ev := h.logger.WithLevel(zerologLevel(entry.Level)).
		Str("source", entry.Source)
	if entry.Truncated {
		ev = ev.Bool("truncated", true)
	}
	ev.Msg(entry.Message)
	return nil
}

// Close is a no-op; the underlying writer belongs to the caller
func (h *ZerologHandler) Close() error {
	return nil
}

func zerologLevel(l core.Level) zerolog.Level {
	switch l {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
