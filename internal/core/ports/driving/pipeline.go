package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// SurveyPipeline runs the full build-and-distribute sequence.
type SurveyPipeline interface {
	// Run executes the pipeline to completion. The returned summary is
	// non-nil even when the run fails; its FinalState reports where the
	// run ended.
	Run(ctx context.Context) (*domain.RunSummary, error)
}

// FormBuilder constructs the remote survey form from the catalogue.
type FormBuilder interface {
	// Build creates the form and injects every section in order.
	// Per-section failures are reported in the outcomes, not as an error;
	// the error is non-nil only when form creation itself fails.
	Build(ctx context.Context, title, documentTitle string, sections []domain.Section) (string, []domain.SectionOutcome, error)
}

// Distributor sends survey invitations to recipients.
type Distributor interface {
	// Distribute attempts every recipient address and reports each outcome.
	Distribute(ctx context.Context, formURL string, recipients []domain.Recipient) []domain.SendOutcome
}

// ReminderService schedules and delivers follow-up reminders.
type ReminderService interface {
	// Schedule persists one reminder per recipient address, due after the
	// configured delay.
	Schedule(ctx context.Context, formID, formURL string, recipients []domain.Recipient, delay time.Duration) (int, error)

	// RunDue delivers all reminders due at the time of the call.
	RunDue(ctx context.Context) ([]domain.ReminderResult, error)

	// List returns all known reminders.
	List(ctx context.Context) ([]domain.Reminder, error)
}
