package domain

// InviteData is the payload for the invitation email template.
type InviteData struct {
	Name        string
	SurveyTitle string
	FormURL     string
	Sections    []Section
}

// ReminderData is the payload for the reminder email template.
type ReminderData struct {
	Name        string
	SurveyTitle string
	FormURL     string
}
