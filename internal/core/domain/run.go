package domain

import "time"

// PipelineState is one stage of the distribution pipeline state machine.
type PipelineState string

// Pipeline states, in forward order. StateFailed is terminal and reachable
// from any state.
const (
	StateIdle               PipelineState = "idle"
	StateAuthenticated      PipelineState = "authenticated"
	StateFormBuilt          PipelineState = "form_built"
	StateSummaryGenerated   PipelineState = "summary_generated"
	StateAwaitingConfirm    PipelineState = "awaiting_confirmation"
	StateDistributing       PipelineState = "distributing"
	StateRemindersScheduled PipelineState = "reminders_scheduled"
	StateDone               PipelineState = "done"
	StateFailed             PipelineState = "failed"
)

// ItemOutcome records the result of a single form item insertion.
type ItemOutcome struct {
	Section string
	// Index is the declared insertion index before clamping.
	Index int
	Err   error
}

// SectionOutcome aggregates the insertion results of one section.
type SectionOutcome struct {
	Title string
	// Requested is the number of insertion requests issued for the section:
	// page break, header image, and one per question.
	Requested int
	Succeeded int
	// Skipped is true when the whole section was abandoned, for example
	// because its header banner could not be published.
	Skipped bool
	Err     error
	Items   []ItemOutcome
}

// Failed reports whether any part of the section did not make it into the form.
func (s SectionOutcome) Failed() bool {
	return s.Skipped || s.Err != nil || s.Succeeded < s.Requested
}

// SendOutcome records one attempted invitation email.
type SendOutcome struct {
	Institution string
	Email       string
	Err         error
}

// RunSummary aggregates per-item and per-recipient outcomes of a pipeline run.
// Failures are carried as values rather than thrown mid-loop so the run can
// report everything at the end.
type RunSummary struct {
	RunID     string
	StartedAt time.Time
	EndedAt   time.Time

	FormID     string
	FormURL    string
	SummaryURL string

	Sections []SectionOutcome
	Sends    []SendOutcome

	Confirmed        bool
	RemindersPlanned int

	FinalState PipelineState
	Err        error
}
