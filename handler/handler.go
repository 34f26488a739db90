package handler

import "github.com/philipp01105/logbridge/core"

// Handler defines the interface for host-side handlers of bridged
// messages.
type Handler interface {
	// Handle processes one entry synchronously. The entry is recycled
	// once Handle returns, so implementations must not retain it.
	Handle(entry *core.Entry) error

	// Close flushes and releases resources
	Close() error
}
