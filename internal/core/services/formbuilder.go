package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Ensure FormBuilderService implements the driving port.
var _ driving.FormBuilder = (*FormBuilderService)(nil)

// FormBuilderService constructs the remote form section by section.
//
// The form document is externally owned: the server may normalise or reject
// indices, so the builder re-fetches the live item count and clamps its
// declared index before every single insertion. Each insertion is its own
// mutating call; nothing is batched across items.
type FormBuilderService struct {
	api     driven.FormDocumentAPI
	banners driven.BannerRenderer
	content driven.ContentStore
}

// NewFormBuilderService creates the builder from its driven ports.
func NewFormBuilderService(
	api driven.FormDocumentAPI,
	banners driven.BannerRenderer,
	content driven.ContentStore,
) *FormBuilderService {
	return &FormBuilderService{
		api:     api,
		banners: banners,
		content: content,
	}
}

// Build creates the form and injects every section in order. Form creation
// failure is the only fatal error; everything after it is carried in the
// per-section outcomes and the build runs to the end of the catalogue.
func (s *FormBuilderService) Build(
	ctx context.Context,
	title, documentTitle string,
	sections []domain.Section,
) (string, []domain.SectionOutcome, error) {
	formID, err := s.api.CreateForm(ctx, title, documentTitle)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrDocumentCreation, err)
	}
	logger.Section("injecting " + fmt.Sprint(len(sections)) + " sections")

	outcomes := make([]domain.SectionOutcome, 0, len(sections))

	// Local insertion counter. It advances by requests issued, not by
	// requests accepted: after a failed insertion the declared indices of
	// later items run ahead of the real item count, and the per-request
	// clamp pulls them back to the form's tail.
	next := 0

	for _, sec := range sections {
		outcome := s.buildSection(ctx, formID, sec, &next)
		if outcome.Failed() {
			logger.Error("section %q: %d/%d items inserted", sec.Title, outcome.Succeeded, outcome.Requested)
		}
		outcomes = append(outcomes, outcome)
	}

	return formID, outcomes, nil
}

// buildSection publishes the section banner and inserts the section's items.
// A banner failure abandons the whole section; item failures skip only the
// failing item.
func (s *FormBuilderService) buildSection(
	ctx context.Context,
	formID string,
	sec domain.Section,
	next *int,
) domain.SectionOutcome {
	outcome := domain.SectionOutcome{Title: sec.Title}

	bannerURL, err := s.publishBanner(ctx, sec)
	if err != nil {
		outcome.Skipped = true
		outcome.Err = fmt.Errorf("%w: section %q: %v", domain.ErrSectionInjection, sec.Title, err)
		return outcome
	}

	items := make([]domain.FormItem, 0, len(sec.Questions)+2)
	items = append(items,
		domain.NewPageBreak(sec.Title, sec.Description),
		domain.NewImage(bannerURL, sec.Title),
	)
	for _, q := range sec.Questions {
		items = append(items, domain.NewQuestionItem(q))
	}

	outcome.Requested = len(items)
	outcome.Items = make([]domain.ItemOutcome, 0, len(items))

	for _, item := range items {
		declared := *next
		*next++

		err := s.insertClamped(ctx, formID, declared, item)
		outcome.Items = append(outcome.Items, domain.ItemOutcome{
			Section: sec.Title,
			Index:   declared,
			Err:     err,
		})
		if err != nil {
			logger.Error("insert at %d in %q: %v", declared, sec.Title, err)
			continue
		}
		outcome.Succeeded++
	}

	return outcome
}

// insertClamped performs one insertion with the declared index clamped into
// the live range [0, count]. The count is re-fetched immediately before the
// mutation so the clamp always reflects the server's view of the form.
func (s *FormBuilderService) insertClamped(
	ctx context.Context,
	formID string,
	declared int,
	item domain.FormItem,
) error {
	count, err := s.api.ItemCount(ctx, formID)
	if err != nil {
		return fmt.Errorf("fetch item count: %w", err)
	}

	index := declared
	if index < 0 {
		index = 0
	}
	if index > count {
		index = count
	}

	logger.Debug("insert declared=%d clamped=%d count=%d", declared, index, count)
	return s.api.InsertItem(ctx, formID, index, item)
}

// publishBanner renders the section banner and uploads it for public reading.
func (s *FormBuilderService) publishBanner(ctx context.Context, sec domain.Section) (string, error) {
	data, err := s.banners.Render(sec.Title, sec.Description)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	name := fmt.Sprintf("header_%s.png", formtextSlug(sec.Title))
	_, url, err := s.content.UploadPublicPNG(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrImageUpload, err)
	}

	return url, nil
}

// formtextSlug reduces a section title to a safe file name fragment.
func formtextSlug(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	return string(out)
}
