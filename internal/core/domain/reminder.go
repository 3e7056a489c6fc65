package domain

import "time"

// Reminder is a scheduled follow-up email for one recipient address.
// Reminders are persisted when a run reaches the scheduling stage and are
// executed later by the reminder runner.
type Reminder struct {
	ID          string
	Institution string
	ContactName string
	Email       string
	FormID      string
	FormURL     string

	DueAt     time.Time
	CreatedAt time.Time

	// SentAt is zero until the reminder has been delivered.
	SentAt    time.Time
	LastError string
	Attempts  int
}

// Due reports whether the reminder should be sent at the given time.
func (r Reminder) Due(now time.Time) bool {
	return r.SentAt.IsZero() && !r.DueAt.After(now)
}

// ReminderResult records one reminder delivery attempt.
type ReminderResult struct {
	ReminderID string
	StartedAt  time.Time
	EndedAt    time.Time
	Success    bool
	Error      string
}
