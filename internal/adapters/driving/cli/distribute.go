package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/recipients"
	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/templates"
	"github.com/custodia-labs/surveyor-cli/internal/catalog"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/services"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Email the survey invitation for an existing form",
	Long: `Sends the invitation email to every recipient in the CSV for the form
identified by FORM_ID, after confirmation. Reminders are scheduled for
every address.`,
	RunE: runDistribute,
}

func init() {
	rootCmd.AddCommand(distributeCmd)
}

func runDistribute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateForDistribution(); err != nil {
		return err
	}

	recs, err := recipients.NewCSVSource(cfg.CSVPath).Load(ctx)
	if err != nil {
		return err
	}

	svc, live, err := wireReminders(ctx, cfg)
	if err != nil {
		return err
	}
	defer live.Close()

	formURL := domain.FormViewURL(cfg.FormID)
	sections := catalog.Sections()

	addresses := 0
	for _, r := range recs {
		addresses += len(r.Emails)
	}
	confirmed, err := newTerminalPrompt().Confirm(ctx,
		fmt.Sprintf("Distribute the survey to %d institutions (%d addresses)?", len(recs), addresses))
	if err != nil {
		return err
	}
	if !confirmed {
		cmd.Println("Distribution declined.")
		return nil
	}

	distrib := services.NewDistributorService(live.mailer, templates.NewManager(), catalog.Title, sections)
	outcomes := distrib.Distribute(ctx, formURL, recs)

	sent := 0
	for _, oc := range outcomes {
		if oc.Err == nil {
			sent++
			continue
		}
		cmd.Printf("  %s %s <%s>: %v\n", styleError.Render("failed"), oc.Institution, oc.Email, oc.Err)
	}
	cmd.Printf("Sent %d of %d invitations.\n", sent, len(outcomes))

	planned, err := svc.Schedule(ctx, cfg.FormID, formURL, recs, cfg.ReminderDelay)
	if err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	cmd.Printf("Scheduled %d reminders.\n", planned)
	return nil
}
