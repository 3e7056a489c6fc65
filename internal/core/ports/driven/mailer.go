package driven

import "context"

// Mailer delivers a single HTML email on behalf of the authenticated user.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// TemplateRenderer renders a named email template with the given data.
type TemplateRenderer interface {
	Render(name string, data any) (string, error)
}
