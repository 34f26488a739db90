package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/logbridge/core"
	"github.com/philipp01105/logbridge/formatter"
)

// ConsoleHandler writes formatted entries to an io.Writer. Writes are
// serialized so concurrent native threads never interleave lines.
type ConsoleHandler struct {
	mu          sync.Mutex
	writer      io.Writer
	formatter   formatter.Formatter
	closeWriter bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// CloseWriter makes Close close the writer when it is an io.Closer
	CloseWriter bool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &ConsoleHandler{
		writer:      cfg.Writer,
		formatter:   cfg.Formatter,
		closeWriter: cfg.CloseWriter,
	}
}

// Handle formats the entry outside the lock and writes it under it
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	buf := formatter.GetBuffer()
	h.formatter.Format(entry, buf)

	h.mu.Lock()
	_, err := h.writer.Write(buf.Bytes())
	h.mu.Unlock()

	formatter.PutBuffer(buf)
	return err
}

// Close closes the writer if the handler owns it. Standard streams are
// never closed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.writer == os.Stdout || h.writer == os.Stderr {
		return nil
	}
	if c, ok := h.writer.(io.Closer); ok && h.closeWriter {
		return c.Close()
	}
	return nil
}
