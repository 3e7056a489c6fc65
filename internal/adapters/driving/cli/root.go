// Package cli implements the surveyor command-line interface.
//
// Commands are wired against the driving ports. Live implementations are
// constructed on first use from the loaded configuration; tests replace the
// package-level service variables with mocks.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/surveyor-cli/internal/catalog"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// version is stamped by the build; "dev" for local builds.
var version = "dev"

// Injected services. Nil means the command wires a live implementation
// from configuration when it runs.
var (
	surveyPipeline driving.SurveyPipeline
	reminderRunner driving.ReminderService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "surveyor",
	Short: "Build and distribute the CARICOM readiness survey",
	Long: `Surveyor builds the CARICOM central-bank readiness questionnaire as a
Google Form, generates a summary document, emails the invitation to the
recipient list, and schedules follow-up reminders.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		// A bad edit to the question tables should fail every command.
		return catalog.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command with the given build version.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}
