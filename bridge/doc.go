// Package bridge forwards formatted log messages to a single
// process-wide host handler.
//
// Messages arrive from two directions. Native code calls the C entry
// point exposed by package bridge/native, which renders a printf-style
// format into a 2048-byte buffer and hands the text to Dispatch. Go code
// calls Forward, which does the same with fmt verbs. Either way the text
// is truncated to MaxMessageSize-1 bytes without any error, and the
// current Handler is invoked exactly once, synchronously, before the
// call returns.
//
// The bridge holds no state besides the handler identity. It never
// filters, queues, retries or catches handler failures:
//
//	bridge.SetHandler(bridge.HandlerFunc(func(msg string) {
//	    fmt.Println("native:", msg)
//	}))
//	bridge.Forward("value=%d", 42) // prints "native: value=42"
//
// Until SetHandler is called, messages go to a text console handler on
// stderr, so the handler is never missing when native code starts
// logging early.
package bridge
