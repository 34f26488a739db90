// Package handler turns bridged native messages into records for a
// host logging backend.
//
// A Forwarder sits between package bridge and a Handler. Each message it
// receives becomes one core.Entry carrying a fixed source name and level,
// which is handed to the Handler synchronously and recycled afterwards.
// Handler errors are counted in Stats and never reach native code.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer.
//   - ZapHandler, LogrusHandler, ZerologHandler and KlogHandler feed the
//     corresponding logging libraries.
//   - SlogHandler feeds any log/slog.Handler.
//   - MultiHandler fans one entry out to several handlers.
//
// None of them queue: a message is written before the native call that
// produced it returns.
package handler
