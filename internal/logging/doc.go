// Package logging constructs the slog loggers used across certgen and
// provides standardized attribute helpers so field names stay consistent
// between the CLI, the orchestrator, and the API client.
package logging
