package bridge

import (
	"fmt"
	"sync"

	"github.com/philipp01105/logbridge/core"
)

// MaxMessageSize is the bounded buffer capacity, terminator included.
const MaxMessageSize = core.MaxMessageSize

// boundedBuffer is an io.Writer over a fixed array that keeps the first
// MaxMessageSize-1 bytes written and silently discards the rest.
type boundedBuffer struct {
	buf       [MaxMessageSize]byte
	n         int
	truncated bool
}

// Write never fails and always reports the full length so fmt keeps
// rendering past the limit.
func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := MaxMessageSize - 1 - b.n; n > room {
		b.truncated = true
		p = p[:room]
	}
	b.n += copy(b.buf[b.n:], p)
	return n, nil
}

func (b *boundedBuffer) String() string {
	return string(b.buf[:b.n])
}

func (b *boundedBuffer) reset() {
	b.n = 0
	b.truncated = false
}

// boundedPool keeps render buffers off the hot path's allocation budget.
// A buffer is owned by exactly one call between Get and Put.
var boundedPool = sync.Pool{
	New: func() interface{} {
		return new(boundedBuffer)
	},
}

// Render formats args according to format using fmt verbs and truncates
// the result to MaxMessageSize-1 bytes. Truncation is byte-exact and may
// split a multi-byte rune, the same as a bounded C formatter would.
//
// A mismatch between verbs and args is the caller's bug; fmt renders it
// with its usual %!verb markers and nothing else is checked.
func Render(format string, args ...interface{}) (msg string, truncated bool) {
	b := boundedPool.Get().(*boundedBuffer)
	b.reset()

	_, _ = fmt.Fprintf(b, format, args...)

	msg, truncated = b.String(), b.truncated
	boundedPool.Put(b)
	return msg, truncated
}
