package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
)

// reminderStore implements driven.ReminderStore.
type reminderStore struct {
	store *Store
}

var _ driven.ReminderStore = (*reminderStore)(nil)

// Save creates or updates a reminder by ID.
func (s *reminderStore) Save(ctx context.Context, reminder *domain.Reminder) error {
	if reminder == nil || reminder.ID == "" {
		return domain.ErrInvalidInput
	}

	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reminders
			(id, institution, contact_name, email, form_id, form_url, due_at, created_at, sent_at, last_error, attempts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			institution = excluded.institution,
			contact_name = excluded.contact_name,
			email = excluded.email,
			form_id = excluded.form_id,
			form_url = excluded.form_url,
			due_at = excluded.due_at,
			sent_at = excluded.sent_at,
			last_error = excluded.last_error,
			attempts = excluded.attempts
	`, reminder.ID, reminder.Institution, reminder.ContactName, reminder.Email,
		reminder.FormID, reminder.FormURL,
		reminder.DueAt.UTC().Format(time.RFC3339),
		reminder.CreatedAt.UTC().Format(time.RFC3339),
		formatNullableTime(reminder.SentAt),
		nullString(reminder.LastError),
		reminder.Attempts)

	if err != nil {
		return fmt.Errorf("saving reminder: %w", err)
	}
	return nil
}

// Get retrieves a reminder by ID.
// Returns nil and no error if the reminder does not exist.
func (s *reminderStore) Get(ctx context.Context, id string) (*domain.Reminder, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, institution, contact_name, email, form_id, form_url, due_at, created_at, sent_at, last_error, attempts
		FROM reminders WHERE id = ?
	`, id)

	reminder, err := scanReminderRow(row)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil // Per interface: return nil and no error if not found
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// List returns all reminders, soonest due first.
func (s *reminderStore) List(ctx context.Context) ([]domain.Reminder, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, institution, contact_name, email, form_id, form_url, due_at, created_at, sent_at, last_error, attempts
		FROM reminders
		ORDER BY due_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// Due returns unsent reminders whose due time is at or before now.
func (s *reminderStore) Due(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, institution, contact_name, email, form_id, form_url, due_at, created_at, sent_at, last_error, attempts
		FROM reminders
		WHERE sent_at IS NULL AND due_at <= ?
		ORDER BY due_at ASC
	`, now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying due reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// RecordResult logs a reminder delivery attempt.
func (s *reminderStore) RecordResult(ctx context.Context, result *domain.ReminderResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reminder_results (reminder_id, started_at, ended_at, success, error)
		VALUES (?, ?, ?, ?, ?)
	`, result.ReminderID,
		result.StartedAt.UTC().Format(time.RFC3339),
		result.EndedAt.UTC().Format(time.RFC3339),
		boolToInt(result.Success),
		nullString(result.Error))

	if err != nil {
		return fmt.Errorf("recording reminder result: %w", err)
	}
	return nil
}

// PruneHistory removes old delivery results beyond the retention limit.
// Keeps the most recent 'keep' results per reminder.
func (s *reminderStore) PruneHistory(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM reminder_results
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY reminder_id ORDER BY started_at DESC) as rn
				FROM reminder_results
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning reminder history: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// scanReminderRow scans a single reminder row.
func scanReminderRow(row *sql.Row) (*domain.Reminder, error) {
	var r domain.Reminder
	var dueAt, createdAt string
	var sentAt, lastError sql.NullString

	if err := row.Scan(&r.ID, &r.Institution, &r.ContactName, &r.Email,
		&r.FormID, &r.FormURL, &dueAt, &createdAt, &sentAt, &lastError, &r.Attempts); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}

	fillReminderTimes(&r, dueAt, createdAt, sentAt, lastError)
	return &r, nil
}

// collectReminders scans reminder rows from a query.
func collectReminders(rows *sql.Rows) ([]domain.Reminder, error) {
	var reminders []domain.Reminder //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r domain.Reminder
		var dueAt, createdAt string
		var sentAt, lastError sql.NullString

		if err := rows.Scan(&r.ID, &r.Institution, &r.ContactName, &r.Email,
			&r.FormID, &r.FormURL, &dueAt, &createdAt, &sentAt, &lastError, &r.Attempts); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}

		fillReminderTimes(&r, dueAt, createdAt, sentAt, lastError)
		reminders = append(reminders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}

	return reminders, nil
}

func fillReminderTimes(r *domain.Reminder, dueAt, createdAt string, sentAt, lastError sql.NullString) {
	if t, err := time.Parse(time.RFC3339, dueAt); err == nil {
		r.DueAt = t
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		r.CreatedAt = t
	}
	r.SentAt = parseNullableTime(sentAt)
	if lastError.Valid {
		r.LastError = lastError.String
	}
}

// formatNullableTime formats a time to RFC3339 string, or returns nil for zero time.
func formatNullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// parseNullableTime parses a nullable RFC3339 string to time.Time.
// Returns zero time if the string is empty or invalid.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return time.Time{} // Return zero time on parse error
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a bool to 1 (true) or 0 (false).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
