// Package logging assembles the structured slog loggers used across the
// mailbox daemon and CLI.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes attribute helpers so components emit data
// with a consistent shape. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
