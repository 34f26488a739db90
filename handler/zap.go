package handler

import (
	"github.com/philipp01105/logbridge/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapHandler writes entries to a zap.Logger
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler that logs through l
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// Handle writes the entry if l is enabled at the entry's level
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(zapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time

	if entry.Truncated {
		ce.Write(zap.String("source", entry.Source), zap.Bool("truncated", true))
	} else {
		ce.Write(zap.String("source", entry.Source))
	}
	return nil
}

// Close flushes the logger
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
