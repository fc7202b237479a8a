// Package operation defines the data model shared by the workflow
// orchestrator and its stages: the operator-supplied input snapshot and the
// single user-visible status cell.
package operation
