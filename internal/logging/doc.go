// Package logging assembles the structured slog loggers used by the textkit
// CLI.
//
// It centralizes level parsing and console/JSON handler selection, and
// exposes a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so every command logs with
// the same shape.
package logging
