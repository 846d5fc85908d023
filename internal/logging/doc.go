// Package logging assembles the structured slog loggers used across
// murmur.
//
// It owns the console and JSON handlers and centralizes level parsing so
// the CLI and pipeline emit log lines with the same shape. Prefer these
// constructors over hand-rolled slog setup.
package logging
