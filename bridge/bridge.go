package bridge

import (
	"os"
	"sync/atomic"

	"github.com/philipp01105/logbridge/core"
	"github.com/philipp01105/logbridge/formatter"
	"github.com/philipp01105/logbridge/handler"
)

// Handler consumes one fully rendered message. HandleMessage runs on the
// thread that produced the message and must not retain it past return
// unless it copies it; Go strings handed to it are already copies.
type Handler interface {
	HandleMessage(msg string)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(msg string)

// HandleMessage calls f(msg).
func (f HandlerFunc) HandleMessage(msg string) {
	f(msg)
}

// TruncationAware is implemented by handlers that want the exact
// truncation result of Render instead of inferring it from the message
// length. Forward calls HandleRenderedMessage in place of HandleMessage;
// Dispatch, which has only the text, never does.
type TruncationAware interface {
	HandleRenderedMessage(msg string, truncated bool)
}

// handlerRef boxes a Handler so it can live in an atomic.Pointer.
type handlerRef struct {
	h Handler
}

// Bridge dispatches messages to one handler. The zero value is not
// usable; create one with New.
type Bridge struct {
	ref atomic.Pointer[handlerRef]
}

// New creates a Bridge bound to h. A nil h binds the default handler.
func New(h Handler) *Bridge {
	b := &Bridge{}
	b.SetHandler(h)
	return b
}

// SetHandler replaces the handler and returns the previous one. A nil h
// restores the default handler.
func (b *Bridge) SetHandler(h Handler) Handler {
	if h == nil {
		h = defaultHandler
	}
	prev := b.ref.Swap(&handlerRef{h: h})
	if prev == nil {
		return nil
	}
	return prev.h
}

// Handler returns the handler messages are currently dispatched to.
func (b *Bridge) Handler() Handler {
	return b.ref.Load().h
}

// Dispatch hands msg to the current handler exactly once and returns
// when the handler does. Handler panics are not recovered.
func (b *Bridge) Dispatch(msg string) {
	b.ref.Load().h.HandleMessage(msg)
}

// Forward renders format and args with Render and hands the result to
// the current handler exactly once.
func (b *Bridge) Forward(format string, args ...interface{}) {
	msg, truncated := Render(format, args...)
	h := b.ref.Load().h
	if ta, ok := h.(TruncationAware); ok {
		ta.HandleRenderedMessage(msg, truncated)
		return
	}
	h.HandleMessage(msg)
}

var (
	defaultHandler Handler
	std            *Bridge
)

func init() {
	ch := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    os.Stderr,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defaultHandler = handler.NewForwarder(ch, handler.ForwarderConfig{
		Source: "native",
		Level:  core.InfoLevel,
	})
	std = New(nil)
}

// Default returns the handler used when none has been installed.
func Default() Handler {
	return defaultHandler
}

// SetHandler installs h as the process-wide handler and returns the
// previous one. A nil h restores the default handler.
func SetHandler(h Handler) Handler {
	return std.SetHandler(h)
}

// CurrentHandler returns the process-wide handler.
func CurrentHandler() Handler {
	return std.Handler()
}

// Dispatch hands msg to the process-wide handler exactly once.
func Dispatch(msg string) {
	std.Dispatch(msg)
}

// Forward renders format and args into a bounded buffer and dispatches
// the text to the process-wide handler.
func Forward(format string, args ...interface{}) {
	std.Forward(format, args...)
}
