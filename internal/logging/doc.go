// Package logging provides structured diagnostics for titlesift.
// It wraps log/slog to emit JSON records to a log file or stderr. The
// filter core uses it as its diagnostic channel: conditions that are
// deliberately not surfaced as errors (such as an invalid regex term
// degrading to literal matching) are still observable here.
package logging
