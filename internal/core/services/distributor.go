package services

import (
	"context"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Email subjects and template names used for distribution.
const (
	inviteSubject   = "CARICOM Survey Invitation"
	reminderSubject = "CARICOM Survey Reminder"

	inviteTemplate   = "invite"
	reminderTemplate = "reminder"
)

// Ensure DistributorService implements the driving port.
var _ driving.Distributor = (*DistributorService)(nil)

// DistributorService sends survey invitations to every recipient address.
type DistributorService struct {
	mailer    driven.Mailer
	templates driven.TemplateRenderer

	surveyTitle string
	sections    []domain.Section
}

// NewDistributorService creates the distributor. The sections are listed in
// the invitation so recipients see the survey's shape before opening it.
func NewDistributorService(
	mailer driven.Mailer,
	templates driven.TemplateRenderer,
	surveyTitle string,
	sections []domain.Section,
) *DistributorService {
	return &DistributorService{
		mailer:      mailer,
		templates:   templates,
		surveyTitle: surveyTitle,
		sections:    sections,
	}
}

// Distribute attempts delivery to every address of every recipient. A failed
// send is recorded and the loop continues; nothing aborts the campaign.
func (s *DistributorService) Distribute(
	ctx context.Context,
	formURL string,
	recipients []domain.Recipient,
) []domain.SendOutcome {
	var outcomes []domain.SendOutcome

	for _, rec := range recipients {
		logger.Info("distributing to %s (%d addresses)", rec.Institution, len(rec.Emails))

		for _, email := range rec.Emails {
			err := s.sendInvite(ctx, email, rec, formURL)
			if err != nil {
				logger.Error("send to %s <%s>: %v", rec.Institution, email, err)
			}
			outcomes = append(outcomes, domain.SendOutcome{
				Institution: rec.Institution,
				Email:       email,
				Err:         err,
			})
		}
	}

	return outcomes
}

func (s *DistributorService) sendInvite(
	ctx context.Context,
	email string,
	rec domain.Recipient,
	formURL string,
) error {
	// Invitations greet the institution, not the contact person.
	body, err := s.templates.Render(inviteTemplate, domain.InviteData{
		Name:        rec.Institution,
		SurveyTitle: s.surveyTitle,
		FormURL:     formURL,
		Sections:    s.sections,
	})
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, email, inviteSubject, body)
}
