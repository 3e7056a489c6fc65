// Package catalog holds the static central-bank readiness questionnaire.
// The catalogue is compiled once at process start and never mutated;
// Sections returns sanitized copies safe to hand to the form builder.
package catalog

import (
	"fmt"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/normalisers/formtext"
)

// Title is the respondent-facing survey title.
const Title = "CARICOM Regional Financial Market Infrastructure Survey"

// DocumentTitle is the Drive file name of the generated form.
const DocumentTitle = "Central Bank Survey Form"

// Sections returns the full catalogue with every user-visible string passed
// through the form text sanitizer. The returned slice is a fresh copy on
// every call.
func Sections() []domain.Section {
	out := make([]domain.Section, len(sections))
	for i, sec := range sections {
		clean := domain.Section{
			Title:       formtext.Sanitize(sec.Title),
			Description: formtext.Sanitize(sec.Description),
			Questions:   make([]domain.Question, len(sec.Questions)),
		}
		for j, q := range sec.Questions {
			cq := domain.Question{Title: formtext.Sanitize(q.Title)}
			switch {
			case q.Text != nil:
				t := *q.Text
				cq.Text = &t
			case q.Scale != nil:
				s := *q.Scale
				s.LowLabel = formtext.Sanitize(s.LowLabel)
				s.HighLabel = formtext.Sanitize(s.HighLabel)
				cq.Scale = &s
			}
			clean.Questions[j] = cq
		}
		out[i] = clean
	}
	return out
}

// Validate checks every section and question in the catalogue.
// Called once at startup so a bad edit to the data tables fails fast.
func Validate() error {
	for _, sec := range sections {
		if err := sec.Validate(); err != nil {
			return fmt.Errorf("catalogue section %q: %w", sec.Title, err)
		}
	}
	return nil
}

// QuestionCount returns the total number of questions across all sections.
func QuestionCount() int {
	n := 0
	for _, sec := range sections {
		n += len(sec.Questions)
	}
	return n
}

// Shorthand constructors for the data tables in sections.go.

func line(title string) domain.Question {
	return domain.Question{Title: title, Text: &domain.TextQuestion{}}
}

func paragraph(title string) domain.Question {
	return domain.Question{Title: title, Text: &domain.TextQuestion{Multiline: true}}
}

func scale(title, lowLabel, highLabel string) domain.Question {
	return domain.Question{
		Title: title,
		Scale: &domain.ScaleQuestion{Low: 1, High: 5, LowLabel: lowLabel, HighLabel: highLabel},
	}
}

func unlabelledScale(title string) domain.Question {
	return domain.Question{Title: title, Scale: &domain.ScaleQuestion{Low: 1, High: 5}}
}
