package handler

import (
	"github.com/philipp01105/logbridge/core"
	"github.com/sirupsen/logrus"
)

// LogrusHandler writes entries to a logrus.Logger
type LogrusHandler struct {
	logger *logrus.Logger
}

// NewLogrusHandler creates a handler that logs through l
func NewLogrusHandler(l *logrus.Logger) *LogrusHandler {
	return &LogrusHandler{logger: l}
}

// Handle writes the entry with the source as a field
func (h *LogrusHandler) Handle(entry *core.Entry) error {
	level := logrusLevel(entry.Level)
	if !h.logger.IsLevelEnabled(level) {
		return nil
	}

	fields := logrus.Fields{"source": entry.Source}
	if entry.Truncated {
		fields["truncated"] = true
	}
	h.logger.WithTime(entry.Time).WithFields(fields).Log(level, entry.Message)
	return nil
}

// Close is a no-op; logrus has nothing to flush
func (h *LogrusHandler) Close() error {
	return nil
}

func logrusLevel(l core.Level) logrus.Level {
	switch l {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
