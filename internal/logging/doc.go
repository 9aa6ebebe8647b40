// Package logging assembles structured slog loggers and formatting helpers used
// across discburn.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so page and watcher code can tag
// log lines with device identifiers and the CLI session id. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup to ensure new
// components emit data with the same shape as the rest of the system.
package logging
