package workflow

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"certgen/internal/fileutil"
	"certgen/internal/journal"
	"certgen/internal/logging"
	"certgen/internal/operation"
	"certgen/internal/services"
)

// ArchiveFilename is the default name for the downloaded bundle.
const ArchiveFilename = "certificates.zip"

// DownloadArchive fetches the generated archive into destPath. It is
// independent of the run pipeline: it never touches the busy flag and may
// execute while a run is in flight. The archive is staged in a temporary
// file and renamed into place, so a failed download leaves nothing behind.
// On success the workflow status is left untouched; on failure it becomes
// the download error.
func (o *Orchestrator) DownloadArchive(ctx context.Context, destPath string) (int64, error) {
	if strings.TrimSpace(destPath) == "" {
		destPath = ArchiveFilename
	}
	if info, err := os.Stat(destPath); err == nil && info.IsDir() {
		destPath = filepath.Join(destPath, ArchiveFilename)
	}

	id := uuid.NewString()
	dlCtx := services.WithRunID(ctx, id)
	logger := logging.WithContext(dlCtx, o.logger)

	o.recordBegin(dlCtx, logger, id, journal.KindDownload)

	writer, err := fileutil.NewAtomicWriter(destPath)
	if err != nil {
		return 0, o.downloadFailed(dlCtx, logger, id, err)
	}
	defer writer.Abort()

	written, err := o.client.DownloadCertificates(dlCtx, writer)
	if err != nil {
		return written, o.downloadFailed(dlCtx, logger, id, err)
	}
	if err := writer.Commit(); err != nil {
		return written, o.downloadFailed(dlCtx, logger, id, err)
	}

	o.recordFinish(dlCtx, logger, id, operation.Success(destPath), "download")
	logger.Info("archive downloaded",
		logging.String(logging.FieldEventType, "download_complete"),
		logging.String("path", destPath),
		logging.Int64("bytes", written),
	)
	return written, nil
}

func (o *Orchestrator) downloadFailed(ctx context.Context, logger *slog.Logger, id string, err error) error {
	status := operation.Error(MsgDownloadFailed)
	o.setStatus(status)
	o.recordFinish(ctx, logger, id, status, "download")
	logger.Error("download failed",
		logging.String(logging.FieldEventType, "download_failure"),
		logging.Error(err),
	)
	return services.Wrap(services.ErrExternalService, "download", "get", "", err)
}
