// Package native exposes a C-callable, printf-style logging callback
// whose output lands in the process-wide bridge.Handler.
//
// Native libraries that accept a logging function pointer of the shape
//
//	void (*)(const char *format, ...)
//
// can be handed CallbackPointer(). Each call renders the message with
// vsnprintf into a 2048-byte stack buffer, truncating silently, and then
// invokes bridge.Dispatch exactly once on the calling thread. Calls from
// threads Go did not create are fine; cgo attaches them on entry.
//
// The package requires cgo.
package native
