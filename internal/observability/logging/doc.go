// Package logging wraps log/slog with the helpers the rest of the
// application logs through: JSON output by default, level selection via
// LOG_LEVEL, and request ID propagation from the HTTP layer.
package logging
