package handler

import "github.com/philipp01105/logbridge/core"

// ForwarderConfig holds configuration for a Forwarder
type ForwarderConfig struct {
	// Source names the native library the messages come from
	// (default: "native")
	Source string
	// Level every forwarded message is recorded at (default: InfoLevel)
	Level core.Level
}

// Forwarder adapts a Handler to the bridge's single-string handler
// contract. It satisfies bridge.Handler and bridge.TruncationAware.
type Forwarder struct {
	handler Handler
	source  string
	level   core.Level
	stats   *Stats
}

// NewForwarder creates a Forwarder that feeds h
func NewForwarder(h Handler, cfg ForwarderConfig) *Forwarder {
	if cfg.Source == "" {
		cfg.Source = "native"
	}
	core.StartCoarseClock()
	return &Forwarder{
		handler: h,
		source:  cfg.Source,
		level:   cfg.Level,
		stats:   NewStats(),
	}
}

// HandleMessage wraps msg in an entry and hands it to the handler.
// Truncation is inferred from the message length.
func (f *Forwarder) HandleMessage(msg string) {
	f.HandleRenderedMessage(msg, core.IsTruncated(msg))
}

// HandleRenderedMessage is HandleMessage with the renderer's exact
// truncation result. Handler errors are only counted.
func (f *Forwarder) HandleRenderedMessage(msg string, truncated bool) {
	entry := core.GetEntry()
	entry.Time = core.CoarseNow()
	entry.Level = f.level
	entry.Source = f.source
	entry.Message = msg
	entry.Truncated = truncated

	if entry.Truncated {
		f.stats.IncrementTruncated()
	}
	if err := f.handler.Handle(entry); err != nil {
		f.stats.IncrementFailed()
	} else {
		f.stats.IncrementProcessed()
	}

	core.PutEntry(entry)
}

// Handler returns the wrapped handler
func (f *Forwarder) Handler() Handler {
	return f.handler
}

// Stats returns the forwarder's counters
func (f *Forwarder) Stats() *Stats {
	return f.stats
}

// Close closes the wrapped handler
func (f *Forwarder) Close() error {
	return f.handler.Close()
}
