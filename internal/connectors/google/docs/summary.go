// Package docs generates the survey summary document via the Google Docs API.
package docs

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/custodia-labs/surveyor-cli/internal/connectors/google"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Ensure Writer implements the SummaryWriter port.
var _ driven.SummaryWriter = (*Writer)(nil)

// Writer creates summary documents in the authenticated user's Drive.
type Writer struct {
	svc     *docs.Service
	limiter *google.RateLimiter
}

// NewWriter creates a Docs summary writer with the default rate limits.
func NewWriter(svc *docs.Service) *Writer {
	return &Writer{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceDocs),
	}
}

// CreateSummary writes a document describing the survey and linking to the
// form, and returns the document's URL.
func (w *Writer) CreateSummary(ctx context.Context, title, formURL string, sections []domain.Section) (string, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return "", err
	}

	doc, err := w.svc.Documents.Create(&docs.Document{Title: title + " - Summary"}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create summary document: %w", google.WrapError(err))
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body := summaryText(title, formURL, sections)
	batch := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Text:     body,
					Location: &docs.Location{Index: 1},
				},
			},
		},
	}

	if _, err := w.svc.Documents.BatchUpdate(doc.DocumentId, batch).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("write summary content: %w", google.WrapError(err))
	}

	url := DocumentURL(doc.DocumentId)
	logger.Debug("created summary document %s", url)
	return url, nil
}

// DocumentURL builds the editor URL for a document ID.
func DocumentURL(documentID string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", documentID)
}

// summaryText renders the plain-text body of the summary document.
func summaryText(title, formURL string, sections []domain.Section) string {
	var b strings.Builder

	b.WriteString(title + "\n\n")
	b.WriteString("Form: " + formURL + "\n\n")

	total := 0
	for _, s := range sections {
		total += len(s.Questions)
	}
	fmt.Fprintf(&b, "%d sections, %d questions.\n\n", len(sections), total)

	for i, s := range sections {
		fmt.Fprintf(&b, "%d. %s (%d questions)\n", i+1, s.Title, len(s.Questions))
		if s.Description != "" {
			b.WriteString("   " + s.Description + "\n")
		}
	}

	return b.String()
}
