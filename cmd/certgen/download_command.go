package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"certgen/internal/workflow"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download [dest]",
		Short: "Download the generated certificates archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			dest := cfg.Paths.DownloadDir
			if len(args) == 1 && args[0] != "" {
				dest = args[0]
			}
			if info, err := os.Stat(dest); err == nil && info.IsDir() {
				dest = filepath.Join(dest, workflow.ArchiveFilename)
			}

			orch, err := ctx.newOrchestrator()
			if err != nil {
				return err
			}

			written, err := orch.DownloadArchive(cmd.Context(), dest)
			if err != nil {
				return fmt.Errorf("%s: %w", workflow.MsgDownloadFailed, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", dest, written)
			return nil
		},
	}
	return cmd
}
