// Package journal persists a local history of workflow invocations.
//
// The journal is observability only: the orchestrator records when a run or
// download starts and how it ended, and the CLI renders the history. It
// never feeds back into orchestration, and a journal write failure must
// never fail a run.
package journal
