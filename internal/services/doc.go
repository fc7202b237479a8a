// Package services defines shared utilities consumed by the workflow
// orchestrator and the backend API client.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (local validation vs external endpoint vs configuration).
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
