package workflow

import (
	"context"
	"errors"

	"certgen/internal/fileutil"
	"certgen/internal/operation"
	"certgen/internal/services"
	"certgen/internal/services/certapi"
)

const (
	stageUpload   = "upload"
	stageGenerate = "generate"
	stageSend     = "send"
)

// stageError pairs the fixed operator-facing message with the underlying
// cause so the status cell and the logs can diverge: the operator sees one
// short line, the log keeps the detail.
type stageError struct {
	display string
	err     error
}

func (e *stageError) Error() string { return e.err.Error() }

func (e *stageError) Unwrap() error { return e.err }

func displayMessage(err error, fallback string) string {
	var se *stageError
	if errors.As(err, &se) && se.display != "" {
		return se.display
	}
	return fallback
}

type uploadStage struct {
	client *certapi.Client
}

func (s *uploadStage) Name() string { return stageUpload }

func (s *uploadStage) FailureMessage() string { return MsgUploadFailed }

func (s *uploadStage) Prepare(ctx context.Context, in *operation.Input) error {
	if in.ParticipantsPath == "" || in.TemplatePath == "" {
		return &stageError{
			display: MsgFilesRequired,
			err:     services.Wrap(services.ErrValidation, stageUpload, "prepare", "participants and template paths are required", nil),
		}
	}
	if !fileutil.FileExists(in.ParticipantsPath) {
		return &stageError{
			display: MsgFilesRequired,
			err:     services.Wrap(services.ErrValidation, stageUpload, "prepare", "participants file not found: "+in.ParticipantsPath, nil),
		}
	}
	if !fileutil.FileExists(in.TemplatePath) {
		return &stageError{
			display: MsgFilesRequired,
			err:     services.Wrap(services.ErrValidation, stageUpload, "prepare", "template file not found: "+in.TemplatePath, nil),
		}
	}
	return nil
}

func (s *uploadStage) Execute(ctx context.Context, in *operation.Input) error {
	err := s.client.UploadFiles(ctx, certapi.UploadRequest{
		ParticipantsPath: in.ParticipantsPath,
		TemplatePath:     in.TemplatePath,
		EmailBody:        in.EmailBody,
	})
	if err != nil {
		return services.Wrap(services.ErrExternalService, stageUpload, "post", "", err)
	}
	return nil
}

type generateStage struct {
	client *certapi.Client
}

func (s *generateStage) Name() string { return stageGenerate }

func (s *generateStage) FailureMessage() string { return MsgGenerateFailed }

func (s *generateStage) Prepare(ctx context.Context, in *operation.Input) error {
	return nil
}

func (s *generateStage) Execute(ctx context.Context, in *operation.Input) error {
	err := s.client.GenerateCertificates(ctx, certapi.GenerateRequest{
		X:        in.X,
		Y:        in.Y,
		FontSize: in.FontSize,
		Color:    in.Color,
		Outline:  in.Outline,
		DPI:      in.DPI,
	})
	if err != nil {
		return services.Wrap(services.ErrExternalService, stageGenerate, "post", "", err)
	}
	return nil
}

type sendStage struct {
	client *certapi.Client
}

func (s *sendStage) Name() string { return stageSend }

func (s *sendStage) FailureMessage() string { return MsgSendFailed }

func (s *sendStage) Prepare(ctx context.Context, in *operation.Input) error {
	if in.SenderEmail == "" {
		return &stageError{
			display: MsgSenderRequired,
			err:     services.Wrap(services.ErrValidation, stageSend, "prepare", "sender email is empty", nil),
		}
	}
	return nil
}

func (s *sendStage) Execute(ctx context.Context, in *operation.Input) error {
	err := s.client.SendEmails(ctx, certapi.SendRequest{
		SenderEmail:    in.SenderEmail,
		SenderPassword: in.SenderPassword,
		CustomSubject:  in.CustomSubject,
		DryRun:         in.DryRun,
	})
	if err != nil {
		return services.Wrap(services.ErrExternalService, stageSend, "post", "", err)
	}
	return nil
}
