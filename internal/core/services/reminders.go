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

// historyKeep bounds per-reminder delivery history retained after a run.
const historyKeep = 20

// Ensure ReminderScheduler implements the driving port.
var _ driving.ReminderService = (*ReminderScheduler)(nil)

// ReminderScheduler persists follow-up reminders and delivers the due ones.
type ReminderScheduler struct {
	store     driven.ReminderStore
	mailer    driven.Mailer
	templates driven.TemplateRenderer

	surveyTitle string
	now         func() time.Time
}

// NewReminderScheduler creates the scheduler from its driven ports.
func NewReminderScheduler(
	store driven.ReminderStore,
	mailer driven.Mailer,
	templates driven.TemplateRenderer,
	surveyTitle string,
) *ReminderScheduler {
	return &ReminderScheduler{
		store:       store,
		mailer:      mailer,
		templates:   templates,
		surveyTitle: surveyTitle,
		now:         time.Now,
	}
}

// Schedule persists one reminder per recipient address, due after the given
// delay. Returns the number of reminders written.
func (s *ReminderScheduler) Schedule(
	ctx context.Context,
	formID, formURL string,
	recipients []domain.Recipient,
	delay time.Duration,
) (int, error) {
	due := s.now().Add(delay)

	count := 0
	for _, rec := range recipients {
		for _, email := range rec.Emails {
			reminder := &domain.Reminder{
				ID:          uuid.NewString(),
				Institution: rec.Institution,
				ContactName: rec.ContactName,
				Email:       email,
				FormID:      formID,
				FormURL:     formURL,
				DueAt:       due,
			}
			if err := s.store.Save(ctx, reminder); err != nil {
				return count, fmt.Errorf("schedule reminder for %s: %w", email, err)
			}
			count++
		}
	}

	logger.Info("scheduled %d reminders due %s", count, due.Format(time.RFC3339))
	return count, nil
}

// RunDue delivers every reminder due now. Each delivery attempt is recorded;
// a failed send leaves the reminder unsent so a later run retries it.
func (s *ReminderScheduler) RunDue(ctx context.Context) ([]domain.ReminderResult, error) {
	due, err := s.store.Due(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}

	results := make([]domain.ReminderResult, 0, len(due))
	for i := range due {
		results = append(results, s.deliver(ctx, &due[i]))
	}

	if err := s.store.PruneHistory(ctx, historyKeep); err != nil {
		logger.Warn("prune reminder history: %v", err)
	}

	return results, nil
}

// List returns all known reminders, soonest due first.
func (s *ReminderScheduler) List(ctx context.Context) ([]domain.Reminder, error) {
	return s.store.List(ctx)
}

func (s *ReminderScheduler) deliver(ctx context.Context, reminder *domain.Reminder) domain.ReminderResult {
	result := domain.ReminderResult{
		ReminderID: reminder.ID,
		StartedAt:  s.now(),
	}

	err := s.sendReminder(ctx, reminder)

	result.EndedAt = s.now()
	result.Success = err == nil

	reminder.Attempts++
	if err != nil {
		result.Error = err.Error()
		reminder.LastError = err.Error()
		logger.Error("reminder to %s: %v", reminder.Email, err)
	} else {
		reminder.SentAt = result.EndedAt
		reminder.LastError = ""
	}

	if saveErr := s.store.Save(ctx, reminder); saveErr != nil {
		logger.Error("persist reminder %s: %v", reminder.ID, saveErr)
	}
	if recErr := s.store.RecordResult(ctx, &result); recErr != nil {
		logger.Error("record reminder result %s: %v", reminder.ID, recErr)
	}

	return result
}

func (s *ReminderScheduler) sendReminder(ctx context.Context, reminder *domain.Reminder) error {
	name := reminder.ContactName
	if name == "" {
		name = reminder.Institution
	}

	body, err := s.templates.Render(reminderTemplate, domain.ReminderData{
		Name:        name,
		SurveyTitle: s.surveyTitle,
		FormURL:     reminder.FormURL,
	})
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, reminder.Email, reminderSubject, body)
}
