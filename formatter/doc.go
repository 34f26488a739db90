// Package formatter renders bridged entries into bytes for
// writer-backed handlers.
//
// Both built-in formatters append into a caller-provided bytes.Buffer
// and rely on Append-style functions (time.AppendFormat) to avoid
// per-call allocations. GetBuffer and PutBuffer expose the shared pool;
// pooled buffers are pre-grown to hold one full bounded message, and
// buffers larger than 64 KiB are not returned to the pool.
package formatter
