// Package logging assembles structured slog loggers for zizutil.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and exposes context helpers so every line written during one CLI
// invocation carries the same correlation ID. NewNop gives library code and
// tests a logger that cannot fail.
package logging
