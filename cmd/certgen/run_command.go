package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"certgen/internal/config"
	"certgen/internal/operation"
	"certgen/internal/services"
	"certgen/internal/workflow"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		participants  string
		template      string
		emailBody     string
		emailBodyFile string
		xPos          int
		yPos          int
		fontSize      int
		color         string
		outline       bool
		dpi           int
		sender        string
		password      string
		subject       string
		skipSend      bool
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Upload files, generate certificates, and email them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			input := operation.Input{
				ParticipantsPath: participants,
				TemplatePath:     template,
				EmailBody:        emailBody,
				FontSize:         fontSize,
				Color:            color,
				Outline:          outline,
				DPI:              dpi,
				SenderEmail:      sender,
				SenderPassword:   password,
				CustomSubject:    subject,
				SkipSend:         skipSend,
				DryRun:           dryRun,
			}

			if emailBodyFile != "" {
				body, err := os.ReadFile(emailBodyFile)
				if err != nil {
					return fmt.Errorf("read email body file: %w", err)
				}
				input.EmailBody = string(body)
			}
			if cmd.Flags().Changed("x") {
				input.X = &xPos
			}
			if cmd.Flags().Changed("y") {
				input.Y = &yPos
			}
			if input.SenderEmail == "" {
				input.SenderEmail = cfg.Email.Sender
			}
			if input.CustomSubject == "" {
				input.CustomSubject = cfg.Email.Subject
			}
			if input.SenderPassword == "" {
				input.SenderPassword = os.Getenv(config.EnvAppPassword)
			}

			orch, err := ctx.newOrchestrator()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			orch.Subscribe(func(s operation.Status) {
				fmt.Fprintln(out, renderStatusLine(stageLabel(s), statusKindFor(s), s.Message, colorize))
			})
			orch.CheckHealth(cmd.Context())

			status, err := orch.Run(cmd.Context(), input)
			if err != nil {
				if errors.Is(err, services.ErrBusy) {
					return errors.New("another run is already in progress")
				}
				return fmt.Errorf("%s: %w", status.Message, err)
			}
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&participants, "participants", "", "Path to the participants CSV file")
	cmd.Flags().StringVar(&template, "template", "", "Path to the certificate template image")
	cmd.Flags().StringVar(&emailBody, "email-body", "", "Email body text ({name} is substituted per participant)")
	cmd.Flags().StringVar(&emailBodyFile, "email-body-file", "", "Read the email body from a file")
	cmd.Flags().IntVar(&xPos, "x", 0, "Horizontal name position in pixels (omit for auto-center)")
	cmd.Flags().IntVar(&yPos, "y", 0, "Vertical name position in pixels (omit for auto-center)")
	cmd.Flags().IntVar(&fontSize, "fontsize", defaults.Render.FontSize, "Name font size in points")
	cmd.Flags().StringVar(&color, "color", defaults.Render.Color, "Name color as a hex value")
	cmd.Flags().BoolVar(&outline, "outline", false, "Draw a contrasting outline around the name")
	cmd.Flags().IntVar(&dpi, "dpi", defaults.Render.DPI, "Output resolution")
	cmd.Flags().StringVar(&sender, "sender", "", "Sender email address")
	cmd.Flags().StringVar(&password, "password", "", "Sender app password (or set "+config.EnvAppPassword+")")
	cmd.Flags().StringVar(&subject, "subject", "", "Custom email subject ({name} is substituted per participant)")
	cmd.Flags().BoolVar(&skipSend, "skip-send", false, "Stop after generating certificates")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the send stage without delivering email")

	return cmd
}

func stageLabel(s operation.Status) string {
	switch s.Message {
	case workflow.MsgUploading:
		return "Upload"
	case workflow.MsgGenerating:
		return "Generate"
	case workflow.MsgSending:
		return "Send"
	default:
		return "Workflow"
	}
}

func statusKindFor(s operation.Status) statusKind {
	switch s.Type {
	case operation.StatusSuccess:
		return statusOK
	case operation.StatusError:
		return statusError
	default:
		return statusInfo
	}
}
