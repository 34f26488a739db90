package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logbridge/core"
)

// Formatter renders an entry into a caller-provided buffer.
type Formatter interface {
	// Format appends the rendered entry, newline included, to buf.
	Format(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for the
	// formatter's default)
	TimestampFormat string
	// OmitSource drops the source name from the output
	OmitSource bool
}

// bufferPool is a pool of bytes.Buffer sized for one bridged message
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(core.MaxMessageSize + 128)
		return b
	},
}

// GetBuffer returns an empty pooled buffer.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer hands buf back to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
