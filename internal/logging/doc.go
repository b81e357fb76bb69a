// Package logging assembles the structured slog loggers used across
// metaprobe.
//
// It owns the console and JSON handlers and centralizes level parsing so
// every component emits log lines with the same shape. Prefer these
// constructors over hand-rolled slog setup; NewNop returns a discard logger
// for tests and wiring code that cannot fail.
package logging
