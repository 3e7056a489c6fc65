package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(store *mockReminderStore, mailer *mockMailer, at time.Time) *ReminderScheduler {
	svc := NewReminderScheduler(store, mailer, &mockTemplates{}, "Readiness Survey")
	svc.now = func() time.Time { return at }
	return svc
}

func TestReminderScheduleOnePerAddress(t *testing.T) {
	store := newMockReminderStore()
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestScheduler(store, &mockMailer{}, base)

	count, err := svc.Schedule(context.Background(), "form-1", "https://forms.example/view", testRecipients(), 72*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, store.saved, 3)

	for _, r := range store.saved {
		assert.Equal(t, "form-1", r.FormID)
		assert.Equal(t, base.Add(72*time.Hour), r.DueAt)
		assert.NotEmpty(t, r.ID)
		assert.True(t, r.SentAt.IsZero())
	}
}

func TestReminderScheduleStopsOnStoreError(t *testing.T) {
	store := newMockReminderStore()
	store.saveErr = errors.New("disk full")
	svc := newTestScheduler(store, &mockMailer{}, time.Now())

	count, err := svc.Schedule(context.Background(), "form-1", "url", testRecipients(), time.Hour)

	require.Error(t, err)
	assert.Zero(t, count)
}

func TestReminderRunDueSendsAndMarks(t *testing.T) {
	store := newMockReminderStore()
	mailer := &mockMailer{}
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestScheduler(store, mailer, base)
	_, err := svc.Schedule(context.Background(), "form-1", "url", testRecipients(), 72*time.Hour)
	require.NoError(t, err)

	// Before the due time nothing is delivered.
	svc.now = func() time.Time { return base.Add(time.Hour) }
	results, err := svc.RunDue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, mailer.sent)

	// Past the due time every reminder goes out exactly once.
	after := base.Add(73 * time.Hour)
	svc.now = func() time.Time { return after }
	results, err = svc.RunDue(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Len(t, mailer.sent, 3)
	for _, res := range results {
		assert.True(t, res.Success)
	}
	for _, r := range store.saved {
		assert.Equal(t, after, r.SentAt)
		assert.Equal(t, 1, r.Attempts)
	}

	// A second run finds nothing due.
	results, err = svc.RunDue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Len(t, mailer.sent, 3)

	assert.Equal(t, historyKeep, store.pruned)
	assert.Len(t, store.results, 3)
}

func TestReminderRunDueRetriesFailures(t *testing.T) {
	store := newMockReminderStore()
	mailer := &mockMailer{failFor: map[string]error{
		"info@boj.example": errors.New("rate limited"),
	}}
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestScheduler(store, mailer, base)
	_, err := svc.Schedule(context.Background(), "form-1", "url", testRecipients(), time.Hour)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(2 * time.Hour) }
	results, err := svc.RunDue(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	failed := 0
	for _, res := range results {
		if !res.Success {
			failed++
			assert.Contains(t, res.Error, "rate limited")
		}
	}
	assert.Equal(t, 1, failed)

	// The failed reminder stays unsent and is picked up again once the
	// mailer recovers.
	mailer.failFor = nil
	results, err = svc.RunDue(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)

	for _, r := range store.saved {
		assert.False(t, r.SentAt.IsZero())
		assert.Empty(t, r.LastError)
	}
}

func TestReminderGreetingFallsBackToInstitution(t *testing.T) {
	store := newMockReminderStore()
	mailer := &mockMailer{}
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestScheduler(store, mailer, base)
	recipients := testRecipients()[:1]
	recipients[0].ContactName = ""
	_, err := svc.Schedule(context.Background(), "form-1", "url", recipients, 0)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Minute) }
	_, err = svc.RunDue(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, mailer.sent)
	assert.Contains(t, mailer.sent[0].body, "Central Bank of Barbados")
	assert.Equal(t, "CARICOM Survey Reminder", mailer.sent[0].subject)
}
