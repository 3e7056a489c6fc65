// Package forms implements the form document API on top of Google Forms.
//
// Every mutation is its own batchUpdate call carrying exactly one request.
// The Forms API normalises or rejects out-of-range indices, so callers are
// expected to re-read the live item count before each insertion and clamp
// the index they declare.
package forms

import (
	"context"
	"fmt"

	"google.golang.org/api/forms/v1"

	"github.com/custodia-labs/surveyor-cli/internal/connectors/google"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Ensure Client implements the FormDocumentAPI port.
var _ driven.FormDocumentAPI = (*Client)(nil)

// Client talks to the Google Forms API for a single authenticated user.
type Client struct {
	svc     *forms.Service
	limiter *google.RateLimiter
}

// NewClient creates a Forms client with the default rate limits.
func NewClient(svc *forms.Service) *Client {
	return &Client{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceForms),
	}
}

// CreateForm creates an empty form with the given display and document
// titles and returns its ID.
func (c *Client) CreateForm(ctx context.Context, title, documentTitle string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	form := &forms.Form{
		Info: &forms.Info{
			Title:         title,
			DocumentTitle: documentTitle,
		},
	}

	created, err := c.svc.Forms.Create(form).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentCreation, google.WrapError(err))
	}

	logger.Debug("created form %s (%q)", created.FormId, title)
	return created.FormId, nil
}

// ItemCount fetches the form and returns its current number of items.
func (c *Client) ItemCount(ctx context.Context, formID string) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	form, err := c.svc.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("fetch form %s: %w", formID, google.WrapError(err))
	}

	return len(form.Items), nil
}

// InsertItem inserts one item at the given index via a single-request
// batchUpdate. The index must already be clamped to [0, count].
func (c *Client) InsertItem(ctx context.Context, formID string, index int, item domain.FormItem) error {
	req, err := buildCreateItemRequest(index, item)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	batch := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{req},
	}

	if _, err := c.svc.Forms.BatchUpdate(formID, batch).Context(ctx).Do(); err != nil {
		return fmt.Errorf("insert item at %d: %w", index, google.WrapError(err))
	}

	return nil
}
