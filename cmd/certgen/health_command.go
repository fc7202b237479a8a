package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether the backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			orch, err := ctx.newOrchestrator()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			health, err := orch.Health(cmd.Context())
			if err != nil {
				if jsonOutput {
					_ = writeJSON(out, map[string]string{"status": "unreachable", "error": err.Error()})
				} else {
					fmt.Fprintln(out, renderStatusLine("Backend", statusError, cfg.API.BaseURL+" unreachable", shouldColorize(out)))
				}
				return fmt.Errorf("backend health check failed: %w", err)
			}

			if jsonOutput {
				return writeJSON(out, map[string]string{"status": health.Status, "env": health.Env})
			}
			message := health.Status
			if health.Env != "" {
				message = fmt.Sprintf("%s (%s)", health.Status, health.Env)
			}
			fmt.Fprintln(out, renderStatusLine("Backend", statusOK, message, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable output")
	return cmd
}
