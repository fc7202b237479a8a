package workflow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"certgen/internal/journal"
	"certgen/internal/logging"
	"certgen/internal/operation"
	"certgen/internal/services"
)

// Run executes the upload, generate, and send stages strictly in sequence
// and returns the terminal status. A failure aborts the remaining stages;
// the next invocation always restarts from upload. A second Run while one
// is in flight returns services.ErrBusy without touching the pipeline.
func (o *Orchestrator) Run(ctx context.Context, input operation.Input) (operation.Status, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return o.Status(), services.ErrBusy
	}
	defer o.busy.Store(false)

	if o.lock != nil {
		locked, err := o.lock.TryLock()
		if err != nil {
			status := operation.Error(MsgUploadFailed)
			wrapped := services.Wrap(services.ErrConfiguration, stageUpload, "lock", "acquire run lock", err)
			o.setStatus(status)
			return status, wrapped
		}
		if !locked {
			return o.Status(), services.ErrBusy
		}
		defer func() { _ = o.lock.Unlock() }()
	}

	snapshot := input.Snapshot()
	snapshot.Normalize()

	runID := uuid.NewString()
	runCtx := services.WithRunID(ctx, runID)
	logger := logging.WithContext(runCtx, o.logger)

	stages := o.stages
	successMessage := MsgSuccess
	if snapshot.SkipSend {
		stages = stages[:2]
		successMessage = MsgGeneratedOnly
	}

	// File presence is checked before the first status transition so an
	// invalid invocation never reports progress it did not make.
	if err := stages[0].handler.Prepare(runCtx, &snapshot); err != nil {
		status := operation.Error(displayMessage(err, MsgFilesRequired))
		o.setStatus(status)
		logger.Warn("run rejected",
			logging.String(logging.FieldEventType, "run_rejected"),
			logging.Error(err),
		)
		return status, err
	}

	o.recordBegin(runCtx, logger, runID, journal.KindRun)
	logger.Info("run started", logging.String(logging.FieldEventType, "run_start"))
	o.setStatus(operation.Loading(MsgStarting))

	for i, stg := range stages {
		name := stg.handler.Name()
		stageCtx := services.WithStage(runCtx, name)
		stageLogger := logging.WithContext(stageCtx, o.logger)

		if i > 0 {
			if err := stg.handler.Prepare(stageCtx, &snapshot); err != nil {
				return o.fail(stageCtx, stageLogger, runID, name, displayMessage(err, stg.handler.FailureMessage()), err)
			}
		}

		o.setStatus(operation.Loading(stg.loading))
		stageLogger.Info("stage started", logging.String(logging.FieldEventType, "stage_start"))

		if err := stg.handler.Execute(stageCtx, &snapshot); err != nil {
			return o.fail(stageCtx, stageLogger, runID, name, stg.handler.FailureMessage(), err)
		}

		stageLogger.Info("stage completed", logging.String(logging.FieldEventType, "stage_complete"))
	}

	status := operation.Success(successMessage)
	o.setStatus(status)
	o.recordFinish(runCtx, logger, runID, status, lastStageName(stages))
	logger.Info("run completed", logging.String(logging.FieldEventType, "run_complete"))
	return status, nil
}

func (o *Orchestrator) fail(ctx context.Context, logger *slog.Logger, runID, stageName, message string, err error) (operation.Status, error) {
	status := operation.Error(message)
	o.setStatus(status)
	o.recordFinish(ctx, logger, runID, status, stageName)
	logger.Error("stage failed",
		logging.String(logging.FieldEventType, "stage_failure"),
		logging.Error(err),
	)
	return status, err
}

func (o *Orchestrator) recordBegin(ctx context.Context, logger *slog.Logger, id string, kind journal.Kind) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Begin(ctx, id, kind); err != nil {
		logger.Warn("journal write failed", logging.Error(err))
	}
}

func (o *Orchestrator) recordFinish(ctx context.Context, logger *slog.Logger, id string, status operation.Status, stageName string) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Finish(ctx, id, string(status.Type), stageName, status.Message); err != nil {
		logger.Warn("journal write failed", logging.Error(err))
	}
}

func lastStageName(stages []pipelineStage) string {
	if len(stages) == 0 {
		return ""
	}
	return stages[len(stages)-1].handler.Name()
}
