// Package workflow drives the upload, generate, and send stages of a
// certificate run as one atomic operation.
//
// The Orchestrator owns the single user-visible status cell and the busy
// flag. Run executes the three stages strictly in sequence, short-circuits
// on the first failure, and always restarts from the upload stage on the
// next invocation; the backend retains stage artifacts server-side, so
// reordering or parallelizing stages would break the collaborator contract.
// DownloadArchive and CheckHealth are independent of the pipeline:
// downloading shares only the status cell, and the health probe is a
// detached diagnostic whose result is logged and discarded.
//
// Overlapping runs are rejected: an atomic in-process guard plus a file
// lock (shared with other certgen processes) returns services.ErrBusy
// instead of letting a second run interleave against the stateful backend.
package workflow
