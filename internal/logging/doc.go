// Package logging assembles structured slog loggers and formatting helpers
// used across the Inkwell host.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and defines the standardized attribute keys (component, drop_id,
// resource, path) so drop handling and its collaborators emit uniformly shaped
// log lines. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
