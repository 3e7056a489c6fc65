package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// mockFormAPI simulates the remote form document. It keeps the authoritative
// item list so clamping can be observed against a live count.
type mockFormAPI struct {
	formID string

	createErr  error
	countErr   error
	insertErr  func(call int) error // per-insert failure injection
	insertCall int

	items       []domain.FormItem
	insertedAt  []int
	countsSeen  int
	createCalls int
}

func (m *mockFormAPI) CreateForm(_ context.Context, _, _ string) (string, error) {
	m.createCalls++
	if m.createErr != nil {
		return "", m.createErr
	}
	if m.formID == "" {
		m.formID = "form-1"
	}
	return m.formID, nil
}

func (m *mockFormAPI) ItemCount(_ context.Context, _ string) (int, error) {
	m.countsSeen++
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.items), nil
}

func (m *mockFormAPI) InsertItem(_ context.Context, _ string, index int, item domain.FormItem) error {
	m.insertCall++
	if m.insertErr != nil {
		if err := m.insertErr(m.insertCall); err != nil {
			return err
		}
	}
	m.insertedAt = append(m.insertedAt, index)
	m.items = append(m.items, item)
	return nil
}

type mockBanner struct {
	err error
}

func (m *mockBanner) Render(title, _ string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []byte("png:" + title), nil
}

type mockContent struct {
	err     error
	uploads []string
}

func (m *mockContent) UploadPublicPNG(_ context.Context, name string, _ []byte) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	m.uploads = append(m.uploads, name)
	return "file-" + name, "https://drive.google.com/uc?export=view&id=file-" + name, nil
}

type sentMail struct {
	to, subject, body string
}

type mockMailer struct {
	failFor map[string]error
	sent    []sentMail
}

func (m *mockMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type mockTemplates struct {
	err error
}

func (m *mockTemplates) Render(name string, data any) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("%s:%+v", name, data), nil
}

// mockReminderStore is an in-memory ReminderStore.
type mockReminderStore struct {
	saved   map[string]*domain.Reminder
	order   []string
	results []domain.ReminderResult
	saveErr error
	pruned  int
}

func newMockReminderStore() *mockReminderStore {
	return &mockReminderStore{saved: make(map[string]*domain.Reminder)}
}

func (m *mockReminderStore) Save(_ context.Context, r *domain.Reminder) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, seen := m.saved[r.ID]; !seen {
		m.order = append(m.order, r.ID)
	}
	cp := *r
	m.saved[r.ID] = &cp
	return nil
}

func (m *mockReminderStore) Get(_ context.Context, id string) (*domain.Reminder, error) {
	r, ok := m.saved[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *mockReminderStore) List(_ context.Context) ([]domain.Reminder, error) {
	out := make([]domain.Reminder, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.saved[id])
	}
	return out, nil
}

func (m *mockReminderStore) Due(_ context.Context, now time.Time) ([]domain.Reminder, error) {
	var out []domain.Reminder
	for _, id := range m.order {
		if m.saved[id].Due(now) {
			out = append(out, *m.saved[id])
		}
	}
	return out, nil
}

func (m *mockReminderStore) RecordResult(_ context.Context, result *domain.ReminderResult) error {
	m.results = append(m.results, *result)
	return nil
}

func (m *mockReminderStore) PruneHistory(_ context.Context, keep int) error {
	m.pruned = keep
	return nil
}

type mockAuthenticator struct {
	err   error
	calls int
}

func (m *mockAuthenticator) Authenticate(_ context.Context) error {
	m.calls++
	return m.err
}

type mockRecipients struct {
	err  error
	list []domain.Recipient
}

func (m *mockRecipients) Load(_ context.Context) ([]domain.Recipient, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

type mockSummary struct {
	err error
	url string
}

func (m *mockSummary) CreateSummary(_ context.Context, _, _ string, _ []domain.Section) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.url, nil
}

type mockPrompt struct {
	confirmed bool
	err       error
	prompts   []string
}

func (m *mockPrompt) Confirm(_ context.Context, prompt string) (bool, error) {
	m.prompts = append(m.prompts, prompt)
	return m.confirmed, m.err
}

// mockBuilder and friends back the pipeline tests.
type mockBuilder struct {
	formID   string
	outcomes []domain.SectionOutcome
	err      error
}

func (m *mockBuilder) Build(_ context.Context, _, _ string, _ []domain.Section) (string, []domain.SectionOutcome, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	return m.formID, m.outcomes, nil
}

type mockDistributor struct {
	outcomes []domain.SendOutcome
	calls    int
	formURL  string
}

func (m *mockDistributor) Distribute(_ context.Context, formURL string, _ []domain.Recipient) []domain.SendOutcome {
	m.calls++
	m.formURL = formURL
	return m.outcomes
}

type mockReminderService struct {
	scheduled int
	err       error
	delay     time.Duration
}

func (m *mockReminderService) Schedule(_ context.Context, _, _ string, recipients []domain.Recipient, delay time.Duration) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.delay = delay
	for _, r := range recipients {
		m.scheduled += len(r.Emails)
	}
	return m.scheduled, nil
}

func (m *mockReminderService) RunDue(_ context.Context) ([]domain.ReminderResult, error) {
	return nil, nil
}

func (m *mockReminderService) List(_ context.Context) ([]domain.Reminder, error) {
	return nil, nil
}
