package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/recipients"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driving"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage follow-up reminders",
}

var remindScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule reminders for an existing form",
	Long: `Persists one reminder per recipient address for the form identified
by FORM_ID, due after the configured delay. Nothing is sent until
"remind run" executes them.`,
	RunE: runRemindSchedule,
}

var remindRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Send every reminder that is due",
	RunE:  runRemindRun,
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled reminders",
	RunE:  runRemindList,
}

func init() {
	remindCmd.AddCommand(remindScheduleCmd)
	remindCmd.AddCommand(remindRunCmd)
	remindCmd.AddCommand(remindListCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemindSchedule(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateForDistribution(); err != nil {
		return err
	}

	recs, err := recipients.NewCSVSource(cfg.CSVPath).Load(cmd.Context())
	if err != nil {
		return err
	}

	svc, live, err := wireReminders(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer live.Close()

	planned, err := svc.Schedule(cmd.Context(), cfg.FormID, domain.FormViewURL(cfg.FormID), recs, cfg.ReminderDelay)
	if err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	cmd.Printf("Scheduled %d reminders due in %s.\n", planned, cfg.ReminderDelay)
	return nil
}

// reminderService returns the injected service or wires a live one.
// The returned closer is a no-op for injected services.
func reminderService(cmd *cobra.Command) (driving.ReminderService, func() error, error) {
	if reminderRunner != nil {
		return reminderRunner, func() error { return nil }, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	svc, live, err := wireReminders(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, live.Close, nil
}

func runRemindRun(cmd *cobra.Command, _ []string) error {
	svc, closer, err := reminderService(cmd)
	if err != nil {
		return err
	}
	defer closer()

	results, err := svc.RunDue(cmd.Context())
	if err != nil {
		return fmt.Errorf("run reminders: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No reminders due.")
		return nil
	}

	sent := 0
	for _, res := range results {
		if res.Success {
			sent++
			continue
		}
		cmd.Printf("  %s %s: %s\n", styleError.Render("failed"), res.ReminderID, res.Error)
	}
	cmd.Printf("Sent %d of %d due reminders.\n", sent, len(results))
	return nil
}

func runRemindList(cmd *cobra.Command, _ []string) error {
	svc, closer, err := reminderService(cmd)
	if err != nil {
		return err
	}
	defer closer()

	reminders, err := svc.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}

	if len(reminders) == 0 {
		cmd.Println("No reminders scheduled.")
		return nil
	}

	for _, r := range reminders {
		status := styleWarning.Render("pending")
		if !r.SentAt.IsZero() {
			status = styleSuccess.Render("sent " + r.SentAt.Format(time.RFC3339))
		} else if r.LastError != "" {
			status = styleError.Render(fmt.Sprintf("failed x%d", r.Attempts))
		}
		cmd.Printf("  %s  %s <%s>  due %s  %s\n",
			r.ID, r.Institution, r.Email, r.DueAt.Format(time.RFC3339), status)
	}
	return nil
}
