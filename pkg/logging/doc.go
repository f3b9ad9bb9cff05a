// Package logging provides structured logging configuration for apimctl.
//
// This package wraps log/slog. Diagnostic logs always go to stderr (or a
// file) so that stdout stays reserved for command output that users pipe
// into other tools.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("management api request", "method", "GET", "path", "/apis")
//
// # Output Formats
//
//   - Text: human-readable, the default
//   - JSON: one object per line, for log collection
//
// A second destination can be added with Config.File; records are then
// written to both through a Tee handler.
//
// Components accept a *slog.Logger and fall back to Nop when none is given.
package logging
