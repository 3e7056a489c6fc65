// Package gmail implements the mailer on top of the Gmail API.
// Messages are composed as RFC 2822 MIME with an HTML body and sent from
// the authenticated user's account.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/custodia-labs/surveyor-cli/internal/connectors/google"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// authenticatedUser addresses the Gmail API as the token's owner.
const authenticatedUser = "me"

// Ensure Mailer implements the Mailer port.
var _ driven.Mailer = (*Mailer)(nil)

// Mailer sends HTML email through the Gmail API.
type Mailer struct {
	svc     *gmail.Service
	limiter *google.RateLimiter
}

// NewMailer creates a Gmail mailer with the default rate limits.
func NewMailer(svc *gmail.Service) *Mailer {
	return &Mailer{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceGmail),
	}
}

// Send delivers a single HTML email to the given address.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("%w: empty recipient address", domain.ErrInvalidInput)
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := &gmail.Message{
		Raw: encodeMessage(to, subject, htmlBody),
	}

	if _, err := m.svc.Users.Messages.Send(authenticatedUser, msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: send to %s: %v", domain.ErrEmailSend, to, google.WrapError(err))
	}

	logger.Debug("sent email to %s (%q)", to, subject)
	return nil
}

// encodeMessage builds the base64url-encoded RFC 2822 message the Gmail
// API expects in the Raw field.
func encodeMessage(to, subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
