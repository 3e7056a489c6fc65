package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSections_Shape(t *testing.T) {
	secs := Sections()
	require.Len(t, secs, 12)

	// Question counts per section, in catalogue order.
	counts := []int{2, 15, 8, 13, 13, 9, 10, 5, 8, 4, 2, 4}
	total := 0
	for i, sec := range secs {
		assert.Len(t, sec.Questions, counts[i], "section %q", sec.Title)
		total += len(sec.Questions)
	}
	assert.Equal(t, total, QuestionCount())
}

func TestSections_ScaleBounds(t *testing.T) {
	for _, sec := range Sections() {
		for _, q := range sec.Questions {
			if q.Scale == nil {
				continue
			}
			assert.Less(t, q.Scale.Low, q.Scale.High, "question %q", q.Title)
		}
	}
}

func TestSections_Sanitized(t *testing.T) {
	for _, sec := range Sections() {
		assert.NotRegexp(t, `\s{2,}`, sec.Title)
		assert.NotRegexp(t, `\s{2,}`, sec.Description)
		assert.NotContains(t, strings.ToLower(sec.Title), "font-family")
		for _, q := range sec.Questions {
			assert.NotRegexp(t, `\s{2,}`, q.Title)
			assert.NotContains(t, strings.ToLower(q.Title), "font-family")
		}
	}
}

func TestSections_ExactlyOneVariant(t *testing.T) {
	for _, sec := range Sections() {
		for _, q := range sec.Questions {
			hasText := q.Text != nil
			hasScale := q.Scale != nil
			assert.NotEqual(t, hasText, hasScale, "question %q must have exactly one variant", q.Title)
		}
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	a := Sections()
	a[0].Title = "mutated"
	a[0].Questions[0].Title = "mutated"

	b := Sections()
	assert.Equal(t, "Respondent Information for Survey Tracking", b[0].Title)
	assert.Equal(t, "Please enter the name of your institution", b[0].Questions[0].Title)
}
