package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// ReminderStore persists scheduled reminders and their delivery history.
type ReminderStore interface {
	// Save creates or updates a reminder by ID.
	Save(ctx context.Context, reminder *domain.Reminder) error

	// Get retrieves a reminder by ID. Returns nil and no error if absent.
	Get(ctx context.Context, id string) (*domain.Reminder, error)

	// List returns all reminders, soonest due first.
	List(ctx context.Context) ([]domain.Reminder, error)

	// Due returns unsent reminders whose due time is at or before now.
	Due(ctx context.Context, now time.Time) ([]domain.Reminder, error)

	// RecordResult logs one delivery attempt.
	RecordResult(ctx context.Context, result *domain.ReminderResult) error

	// PruneHistory keeps only the most recent 'keep' results per reminder.
	PruneHistory(ctx context.Context, keep int) error
}
