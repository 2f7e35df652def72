// Package logging builds the structured logger used by the credhyg
// command. It wraps log/slog with text and JSON handlers, writes to
// stderr, and maps the command-line level names (DEBUG, INFO, WARNING,
// ERROR, CRITICAL) onto slog levels, including a CRITICAL level above
// slog.LevelError.
package logging
