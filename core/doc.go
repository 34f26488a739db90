// Package core defines the record types shared by the bridge's
// host-side handlers and formatters.
//
// A bridged native message carries nothing but text. Handlers wrap that
// text in an Entry, stamping it with the configured Level and Source and
// the time read from the coarse clock. Entry objects are pooled via
// sync.Pool; callers get one with GetEntry and return it with PutEntry
// once every handler has consumed it.
package core
