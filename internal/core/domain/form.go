package domain

import "fmt"

// RemoteForm identifies the externally-hosted survey form being constructed.
// The item count is server-authoritative and must be re-fetched before any
// index derived from it is trusted.
type RemoteForm struct {
	ID        string
	ItemCount int
}

// ViewURL returns the respondent-facing URL for a form ID.
func (f RemoteForm) ViewURL() string {
	return FormViewURL(f.ID)
}

// FormViewURL builds the respondent-facing URL for a form ID.
func FormViewURL(formID string) string {
	return fmt.Sprintf("https://docs.google.com/forms/d/%s/viewform", formID)
}

// FormEditURL builds the editor URL for a form ID.
func FormEditURL(formID string) string {
	return fmt.Sprintf("https://docs.google.com/forms/d/%s", formID)
}

// FormItem is a tagged union over the item kinds the builder inserts.
// Exactly one field is set.
type FormItem struct {
	PageBreak *PageBreakItem
	Image     *ImageItem
	Question  *Question
}

// PageBreakItem starts a new form page (section boundary). The title and
// description are shown at the top of the page.
type PageBreakItem struct {
	Title       string
	Description string
}

// ImageItem references an externally hosted image by URL.
type ImageItem struct {
	SourceURL string
	AltText   string
}

// NewPageBreak returns a page-break form item headed by the given title
// and description.
func NewPageBreak(title, description string) FormItem {
	return FormItem{PageBreak: &PageBreakItem{Title: title, Description: description}}
}

// NewImage returns an image form item for a publicly readable URL.
func NewImage(sourceURL, altText string) FormItem {
	return FormItem{Image: &ImageItem{SourceURL: sourceURL, AltText: altText}}
}

// NewQuestionItem wraps a question as a form item.
func NewQuestionItem(q Question) FormItem {
	return FormItem{Question: &q}
}
