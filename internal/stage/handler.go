package stage

import (
	"context"

	"certgen/internal/operation"
)

// Handler describes the contract the orchestrator needs from each stage.
//
// Prepare performs local validation only and must not touch the network;
// Execute performs the stage's single backend call. FailureMessage is the
// fixed operator-facing message shown when Execute fails.
type Handler interface {
	Name() string
	Prepare(context.Context, *operation.Input) error
	Execute(context.Context, *operation.Input) error
	FailureMessage() string
}
