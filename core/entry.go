package core

import (
	"sync"
	"time"
)

// Entry is one bridged message as seen by host-side handlers.
type Entry struct {
	Time    time.Time
	Level   Level
	Source  string
	Message string
	// Truncated is exact for messages rendered by bridge.Forward. For
	// native messages it is inferred from length: a message of exactly
	// MaxMessageSize-1 bytes is flagged even if it fit without loss.
	Truncated bool
}

var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}

// MaxMessageSize is the capacity of the bounded render buffer, terminator
// included. A bridged message is at most MaxMessageSize-1 bytes long.
const MaxMessageSize = 2048

// IsTruncated reports whether msg filled the bounded buffer. The C
// callback leaves no other trace of truncation, so this is a heuristic:
// output that fits in exactly MaxMessageSize-1 bytes is a false positive.
func IsTruncated(msg string) bool {
	return len(msg) >= MaxMessageSize-1
}
