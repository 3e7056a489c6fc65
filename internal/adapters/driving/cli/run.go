package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full survey pipeline",
	Long: `Builds the survey form, generates the summary document, asks for
confirmation, emails the invitation to every recipient, and schedules
follow-up reminders.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	pipeline := surveyPipeline
	if pipeline == nil {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		wired, live, err := wirePipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer live.Close()
		pipeline = wired
	}

	run, err := pipeline.Run(ctx)
	if run != nil {
		printRunSummary(cmd, run)
	}
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

func printRunSummary(cmd *cobra.Command, run *domain.RunSummary) {
	cmd.Println()
	cmd.Println(styleTitle.Render("Run " + run.RunID))
	cmd.Printf("  state:    %s\n", renderState(run.FinalState))
	cmd.Printf("  duration: %s\n", run.EndedAt.Sub(run.StartedAt).Round(time.Millisecond))

	if run.FormURL != "" {
		cmd.Printf("  form:     %s\n", run.FormURL)
	}
	if run.SummaryURL != "" {
		cmd.Printf("  summary:  %s\n", run.SummaryURL)
	}

	if len(run.Sections) > 0 {
		cmd.Println()
		for _, sec := range run.Sections {
			if sec.Skipped {
				cmd.Printf("  %s %s\n", styleError.Render("skipped"), sec.Title)
				continue
			}
			mark := styleSuccess.Render("ok")
			if sec.Failed() {
				mark = styleWarning.Render(fmt.Sprintf("%d/%d", sec.Succeeded, sec.Requested))
			}
			cmd.Printf("  %s %s\n", mark, sec.Title)
		}
	}

	if len(run.Sends) > 0 {
		sent := 0
		for _, s := range run.Sends {
			if s.Err == nil {
				sent++
			}
		}
		cmd.Println()
		cmd.Printf("  invitations: %d sent, %d failed\n", sent, len(run.Sends)-sent)
		for _, s := range run.Sends {
			if s.Err != nil {
				cmd.Printf("    %s %s <%s>: %v\n", styleError.Render("failed"), s.Institution, s.Email, s.Err)
			}
		}
	}

	if run.RemindersPlanned > 0 {
		cmd.Printf("  reminders:   %d scheduled\n", run.RemindersPlanned)
	}

	if run.Err != nil {
		cmd.Println()
		cmd.Println(styleError.Render("error: " + run.Err.Error()))
	}
}

func renderState(state domain.PipelineState) string {
	switch state {
	case domain.StateDone:
		return styleSuccess.Render(string(state))
	case domain.StateFailed:
		return styleError.Render(string(state))
	default:
		return string(state)
	}
}
