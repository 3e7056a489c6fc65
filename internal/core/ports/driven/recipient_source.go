package driven

import (
	"context"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// RecipientSource loads the recipient list. Loaded fully into memory once
// per run; never written back.
type RecipientSource interface {
	Load(ctx context.Context) ([]domain.Recipient, error)
}
