package handler

import "sync/atomic"

// Stats tracks forwarder statistics
type Stats struct {
	// ProcessedTotal counts entries handed to the handler without error.
	// Entries a backend discards for being below its level count here too.
	ProcessedTotal uint64
	// FailedTotal counts entries a handler returned an error for
	FailedTotal uint64
	// TruncatedTotal counts messages that filled the bounded buffer
	TruncatedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementTruncated atomically increments the truncated counter
func (s *Stats) IncrementTruncated() {
	atomic.AddUint64(&s.TruncatedTotal, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetTruncated returns the truncated count
func (s *Stats) GetTruncated() uint64 {
	return atomic.LoadUint64(&s.TruncatedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.TruncatedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
	TruncatedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
		TruncatedTotal: s.GetTruncated(),
	}
}
