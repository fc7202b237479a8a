package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"certgen/internal/journal"
	"certgen/internal/operation"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the outcome of the most recent invocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			last, err := store.Last(cmd.Context())
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}

			out := cmd.OutOrStdout()
			if last == nil {
				if jsonOutput {
					return writeJSON(out, map[string]string{"status": string(operation.StatusIdle)})
				}
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}
			if jsonOutput {
				return writeJSON(out, entryView(*last))
			}

			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine(entryLabel(*last), entryKind(*last), last.Message, colorize))
			fmt.Fprintf(out, "  Started:  %s\n", last.StartedAt.Local().Format("2006-01-02 15:04:05"))
			if last.FinishedAt != nil {
				fmt.Fprintf(out, "  Duration: %s\n", last.Duration().Round(durationPrecision))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable output")
	return cmd
}

func entryLabel(e journal.Entry) string {
	if e.Kind == journal.KindDownload {
		return "Download"
	}
	return humanizeStage(e.Stage)
}

func entryKind(e journal.Entry) statusKind {
	switch e.Status {
	case string(operation.StatusSuccess):
		return statusOK
	case string(operation.StatusError):
		return statusError
	default:
		return statusInfo
	}
}
