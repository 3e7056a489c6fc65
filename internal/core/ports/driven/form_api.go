package driven

import (
	"context"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// FormDocumentAPI is the remote, externally-owned form document.
// The item count is server-authoritative: callers must re-fetch it before
// trusting any index they derived locally, because the server may normalise
// or reject earlier insertions.
type FormDocumentAPI interface {
	// CreateForm creates an empty form and returns its opaque ID.
	CreateForm(ctx context.Context, title, documentTitle string) (string, error)

	// ItemCount returns the form's current number of items.
	ItemCount(ctx context.Context, formID string) (int, error)

	// InsertItem inserts a single item at the given index as its own
	// mutating call. The index must already be clamped to [0, count].
	InsertItem(ctx context.Context, formID string, index int, item domain.FormItem) error
}
