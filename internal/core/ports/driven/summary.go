package driven

import (
	"context"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// SummaryWriter creates the human-readable summary document for a built form.
type SummaryWriter interface {
	// CreateSummary writes a document describing the survey and linking to
	// the form, and returns the document's URL.
	CreateSummary(ctx context.Context, title, formURL string, sections []domain.Section) (string, error)
}
