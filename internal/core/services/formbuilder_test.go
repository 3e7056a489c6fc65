package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

func textQ(title string) domain.Question {
	return domain.Question{Title: title, Text: &domain.TextQuestion{Multiline: true}}
}

func twoSections() []domain.Section {
	return []domain.Section{
		{
			Title:       "Governance",
			Description: "Oversight and accountability.",
			Questions:   []domain.Question{textQ("Q1"), textQ("Q2")},
		},
		{
			Title:       "Technology",
			Description: "Platform readiness.",
			Questions:   []domain.Question{textQ("Q3"), textQ("Q4"), textQ("Q5")},
		},
	}
}

func TestFormBuilderBuildsEverySection(t *testing.T) {
	api := &mockFormAPI{}
	banners := &mockBanner{}
	content := &mockContent{}
	svc := NewFormBuilderService(api, banners, content)

	formID, outcomes, err := svc.Build(context.Background(), "Readiness Survey", "readiness-survey", twoSections())

	require.NoError(t, err)
	assert.Equal(t, "form-1", formID)
	assert.Equal(t, 1, api.createCalls)

	// Page break + banner image + questions per section: 4 + 5 items.
	require.Len(t, api.items, 9)
	assert.Equal(t, 9, api.countsSeen, "count must be re-fetched before every insertion")

	require.Len(t, outcomes, 2)
	assert.Equal(t, 4, outcomes[0].Requested)
	assert.Equal(t, 4, outcomes[0].Succeeded)
	assert.Equal(t, 5, outcomes[1].Requested)
	assert.Equal(t, 5, outcomes[1].Succeeded)
	assert.False(t, outcomes[0].Failed())
	assert.False(t, outcomes[1].Failed())

	// Happy path: declared indices track the live count exactly.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, api.insertedAt)
	assert.Equal(t, []string{"header_governance.png", "header_technology.png"}, content.uploads)
}

func TestFormBuilderItemOrderWithinSection(t *testing.T) {
	api := &mockFormAPI{}
	svc := NewFormBuilderService(api, &mockBanner{}, &mockContent{})

	_, _, err := svc.Build(context.Background(), "t", "t", twoSections()[:1])
	require.NoError(t, err)

	require.Len(t, api.items, 4)
	require.NotNil(t, api.items[0].PageBreak)
	assert.Equal(t, "Governance", api.items[0].PageBreak.Title)
	assert.Equal(t, "Oversight and accountability.", api.items[0].PageBreak.Description)
	require.NotNil(t, api.items[1].Image)
	assert.NotNil(t, api.items[2].Question)
	assert.NotNil(t, api.items[3].Question)
}

func TestFormBuilderCreateFailureIsFatal(t *testing.T) {
	api := &mockFormAPI{createErr: errors.New("quota")}
	svc := NewFormBuilderService(api, &mockBanner{}, &mockContent{})

	_, _, err := svc.Build(context.Background(), "t", "t", twoSections())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentCreation)
	assert.Empty(t, api.items)
}

func TestFormBuilderClampsAfterFailedInsert(t *testing.T) {
	// The second insertion is rejected. The local counter still advances,
	// so later declared indices run one ahead of the live item count and
	// the clamp must pull each of them back to the tail.
	api := &mockFormAPI{
		insertErr: func(call int) error {
			if call == 2 {
				return errors.New("transient")
			}
			return nil
		},
	}
	svc := NewFormBuilderService(api, &mockBanner{}, &mockContent{})

	_, outcomes, err := svc.Build(context.Background(), "t", "t", twoSections())

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, 3, outcomes[0].Succeeded)
	assert.True(t, outcomes[0].Failed())
	assert.Equal(t, 5, outcomes[1].Succeeded)

	// 8 items landed; every accepted index equalled the count at the time.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, api.insertedAt)

	// The failed item's declared index is recorded pre-clamp.
	require.Len(t, outcomes[0].Items, 4)
	assert.Equal(t, 1, outcomes[0].Items[1].Index)
	assert.Error(t, outcomes[0].Items[1].Err)
	assert.Equal(t, 3, outcomes[0].Items[3].Index)
}

func TestFormBuilderBannerFailureSkipsSection(t *testing.T) {
	content := &mockContent{err: errors.New("permission denied")}
	api := &mockFormAPI{}
	svc := NewFormBuilderService(api, &mockBanner{}, content)

	sections := twoSections()
	_, outcomes, err := svc.Build(context.Background(), "t", "t", sections)

	require.NoError(t, err, "a skipped section does not fail the build")
	require.Len(t, outcomes, 2)
	for _, oc := range outcomes {
		assert.True(t, oc.Skipped)
		assert.ErrorIs(t, oc.Err, domain.ErrSectionInjection)
		assert.Contains(t, oc.Err.Error(), "permission denied")
		assert.Zero(t, oc.Requested)
	}
	assert.Empty(t, api.items, "no insertions for skipped sections")
}

func TestFormBuilderRenderFailureSkipsSection(t *testing.T) {
	banners := &mockBanner{err: errors.New("no font")}
	svc := NewFormBuilderService(&mockFormAPI{}, banners, &mockContent{})

	_, outcomes, err := svc.Build(context.Background(), "t", "t", twoSections()[:1])

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Skipped)
	assert.ErrorIs(t, outcomes[0].Err, domain.ErrSectionInjection)
	assert.Contains(t, outcomes[0].Err.Error(), "no font")
}

func TestFormBuilderCountFetchFailureSkipsItem(t *testing.T) {
	api := &mockFormAPI{countErr: errors.New("unavailable")}
	svc := NewFormBuilderService(api, &mockBanner{}, &mockContent{})

	_, outcomes, err := svc.Build(context.Background(), "t", "t", twoSections()[:1])

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Zero(t, outcomes[0].Succeeded)
	assert.Equal(t, 4, outcomes[0].Requested)
	assert.True(t, outcomes[0].Failed())
}

func TestFormtextSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Governance", want: "governance"},
		{name: "spaces to underscores", in: "Legal & Regulatory", want: "legal__regulatory"},
		{name: "mixed separators", in: "Cyber-Security_Readiness", want: "cyber_security_readiness"},
		{name: "digits kept", in: "Phase 2", want: "phase_2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formtextSlug(tt.in))
		})
	}
}
