package formatter

import (
	"bytes"
	"time"

	"github.com/philipp01105/logbridge/core"
)

// TextFormatter formats entries as one human-readable line:
//
//	2026-10-16T09:00:00Z [INFO] libfoo: decoder ready
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// levelBracket returns a pre-formatted level string to avoid multiple
// WriteString calls
func levelBracket(l core.Level) string {
	switch l {
	case core.DebugLevel:
		return " [DEBUG] "
	case core.InfoLevel:
		return " [INFO] "
	case core.WarnLevel:
		return " [WARN] "
	case core.ErrorLevel:
		return " [ERROR] "
	default:
		return " [UNKNOWN] "
	}
}

// Format writes the entry as text into buf
func (f *TextFormatter) Format(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(levelBracket(entry.Level))

	if !f.OmitSource && entry.Source != "" {
		buf.WriteString(entry.Source)
		buf.WriteString(": ")
	}

	// Native messages often end with their own newline
	msg := entry.Message
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	buf.WriteString(msg)

	if entry.Truncated {
		buf.WriteString(" truncated=true")
	}

	buf.WriteByte('\n')
}
