package domain

// Section is a titled, described group of questions rendered as one form page.
// Sections are immutable once the catalogue is compiled; sanitization happens
// when the catalogue is read, not in place.
type Section struct {
	Title       string
	Description string
	Questions   []Question
}

// Question is a tagged union over the supported question variants.
// Exactly one of Text or Scale is set.
type Question struct {
	Title string
	Text  *TextQuestion
	Scale *ScaleQuestion
}

// TextQuestion is a free-text answer field.
type TextQuestion struct {
	// Multiline renders a paragraph box instead of a single line.
	Multiline bool
}

// ScaleQuestion is a Likert-style numeric range with optional endpoint labels.
type ScaleQuestion struct {
	Low       int
	High      int
	LowLabel  string
	HighLabel string
}

// Validate checks the question's structural invariants.
func (q Question) Validate() error {
	if q.Title == "" {
		return ErrInvalidInput
	}
	if (q.Text == nil) == (q.Scale == nil) {
		// Exactly one variant must be present.
		return ErrInvalidInput
	}
	if q.Scale != nil && q.Scale.Low >= q.Scale.High {
		return ErrInvalidInput
	}
	return nil
}

// Validate checks the section and all of its questions.
func (s Section) Validate() error {
	if s.Title == "" {
		return ErrInvalidInput
	}
	for _, q := range s.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
