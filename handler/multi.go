package handler

import (
	"github.com/philipp01105/logbridge/core"
	"go.uber.org/multierr"
)

// MultiHandler sends each entry to several handlers in order. This is
// host-side fan-out after the bridge; the bridge itself still invokes
// exactly one handler.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends the entry to every handler, even after one fails, and
// returns all errors combined
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
