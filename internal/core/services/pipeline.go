package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Ensure PipelineService implements the driving port.
var _ driving.SurveyPipeline = (*PipelineService)(nil)

// PipelineOptions carries the run-wide settings of a pipeline execution.
type PipelineOptions struct {
	Title         string
	DocumentTitle string
	Sections      []domain.Section
	ReminderDelay time.Duration
}

// PipelineService drives a full survey run through its state machine:
//
//	idle -> authenticated -> form_built -> summary_generated ->
//	awaiting_confirmation -> distributing -> reminders_scheduled -> done
//
// failed is terminal and reachable from any state. There is no automatic
// retry: a stage failure ends the run with the summary reporting where it
// stopped. Within a stage, per-item and per-recipient failures are carried
// as values and do not end the run.
type PipelineService struct {
	auth       driven.Authenticator
	recipients driven.RecipientSource
	builder    driving.FormBuilder
	summary    driven.SummaryWriter
	prompt     driven.DecisionPrompt
	distrib    driving.Distributor
	reminders  driving.ReminderService

	opts PipelineOptions
	now  func() time.Time
}

// NewPipelineService wires the pipeline from its ports.
func NewPipelineService(
	auth driven.Authenticator,
	recipients driven.RecipientSource,
	builder driving.FormBuilder,
	summary driven.SummaryWriter,
	prompt driven.DecisionPrompt,
	distrib driving.Distributor,
	reminders driving.ReminderService,
	opts PipelineOptions,
) *PipelineService {
	return &PipelineService{
		auth:       auth,
		recipients: recipients,
		builder:    builder,
		summary:    summary,
		prompt:     prompt,
		distrib:    distrib,
		reminders:  reminders,
		opts:       opts,
		now:        time.Now,
	}
}

// Run executes the pipeline to completion. The returned summary is non-nil
// even on failure; its FinalState and Err report where and why the run ended.
func (p *PipelineService) Run(ctx context.Context) (*domain.RunSummary, error) {
	run := &domain.RunSummary{
		RunID:      uuid.NewString(),
		StartedAt:  p.now(),
		FinalState: domain.StateIdle,
	}

	err := p.advance(ctx, run)

	run.EndedAt = p.now()
	if err != nil {
		run.Err = err
		run.FinalState = domain.StateFailed
		logger.Error("run %s failed: %v", run.RunID, err)
		return run, err
	}

	run.FinalState = domain.StateDone
	return run, nil
}

func (p *PipelineService) advance(ctx context.Context, run *domain.RunSummary) error {
	if err := p.auth.Authenticate(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	run.FinalState = domain.StateAuthenticated

	// The recipient list is loaded before any remote mutation so a bad
	// CSV fails the run while it is still cheap to fail.
	recipients, err := p.recipients.Load(ctx)
	if err != nil {
		return err
	}

	formID, sections, err := p.builder.Build(ctx, p.opts.Title, p.opts.DocumentTitle, p.opts.Sections)
	if err != nil {
		return err
	}
	run.FormID = formID
	run.FormURL = domain.FormViewURL(formID)
	run.Sections = sections
	run.FinalState = domain.StateFormBuilt
	logger.Info("form built: %s", run.FormURL)

	summaryURL, err := p.summary.CreateSummary(ctx, p.opts.Title, run.FormURL, p.opts.Sections)
	if err != nil {
		return err
	}
	run.SummaryURL = summaryURL
	run.FinalState = domain.StateSummaryGenerated

	run.FinalState = domain.StateAwaitingConfirm
	confirmed, err := p.prompt.Confirm(ctx, distributionPrompt(recipients))
	if err != nil {
		return err
	}
	run.Confirmed = confirmed

	if confirmed {
		run.FinalState = domain.StateDistributing
		run.Sends = p.distrib.Distribute(ctx, run.FormURL, recipients)
	} else {
		logger.Info("distribution declined, skipping sends")
	}

	// Reminders are scheduled whether or not distribution was confirmed:
	// a declined run can still be followed up once the form is shared by
	// other means.
	planned, err := p.reminders.Schedule(ctx, formID, run.FormURL, recipients, p.opts.ReminderDelay)
	if err != nil {
		return err
	}
	run.RemindersPlanned = planned
	run.FinalState = domain.StateRemindersScheduled

	return nil
}

func distributionPrompt(recipients []domain.Recipient) string {
	addresses := 0
	for _, r := range recipients {
		addresses += len(r.Emails)
	}
	return fmt.Sprintf("Distribute the survey to %d institutions (%d addresses)?",
		len(recipients), addresses)
}
