package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/surveyor-cli/internal/catalog"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/services"
	"github.com/custodia-labs/surveyor-cli/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the survey form without distributing it",
	Long: `Creates the Google Form, injects every catalogue section with its
header banner, and writes the summary document. No email is sent and no
reminders are scheduled.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	live, err := wireGoogle(ctx, cfg)
	if err != nil {
		return err
	}
	defer live.Close()

	sections := catalog.Sections()
	builder := services.NewFormBuilderService(live.formsClient, render.NewBanner(), live.driveStore)

	formID, outcomes, err := builder.Build(ctx, catalog.Title, catalog.DocumentTitle, sections)
	if err != nil {
		return fmt.Errorf("build form: %w", err)
	}

	formURL := domain.FormViewURL(formID)
	cmd.Println(styleTitle.Render("Form built"))
	cmd.Printf("  view: %s\n", formURL)
	cmd.Printf("  edit: %s\n", domain.FormEditURL(formID))

	for _, sec := range outcomes {
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

	summaryURL, err := live.docsWriter.CreateSummary(ctx, catalog.Title, formURL, sections)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	cmd.Printf("  summary: %s\n", summaryURL)

	cmd.Println()
	cmd.Println(styleMuted.Render("Set FORM_ID=" + formID + " to distribute this form later."))
	return nil
}
