// Package templates renders the embedded HTML email templates.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
)

// Template names accepted by Render.
const (
	Invite   = "invite"
	Reminder = "reminder"
)

//go:embed *.tmpl
var files embed.FS

// Ensure Manager implements the TemplateRenderer port.
var _ driven.TemplateRenderer = (*Manager)(nil)

// Manager holds the parsed email templates.
type Manager struct {
	tmpl *template.Template
}

// NewManager parses the embedded templates. Parsing can only fail if the
// embedded files themselves are malformed, so the error is worth a panic
// at construction rather than a deferred runtime failure.
func NewManager() *Manager {
	return &Manager{
		tmpl: template.Must(template.ParseFS(files, "*.tmpl")),
	}
}

// Render renders the named template with the given data.
func (m *Manager) Render(name string, data any) (string, error) {
	file := name + ".html.tmpl"
	if m.tmpl.Lookup(file) == nil {
		return "", fmt.Errorf("%w: unknown template %q", domain.ErrNotFound, name)
	}

	var b strings.Builder
	if err := m.tmpl.ExecuteTemplate(&b, file, data); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}

	return b.String(), nil
}
