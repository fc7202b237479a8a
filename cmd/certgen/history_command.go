package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"certgen/internal/journal"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs and downloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), clampLimit(limit))
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				views := make([]entryJSON, 0, len(entries))
				for _, e := range entries {
					views = append(views, entryView(e))
				}
				return writeJSON(out, views)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, historyRow(e))
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Kind", "Stage", "Status", "Duration", "Message"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Maximum number of entries to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable output")
	return cmd
}

func historyRow(e journal.Entry) []string {
	duration := ""
	if e.FinishedAt != nil {
		duration = e.Duration().Round(durationPrecision).String()
	}
	return []string{
		e.StartedAt.Local().Format("2006-01-02 15:04:05"),
		string(e.Kind),
		humanizeStage(e.Stage),
		e.Status,
		duration,
		e.Message,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}
