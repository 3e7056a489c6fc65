package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrAuth", ErrAuth},
		{"ErrDocumentCreation", ErrDocumentCreation},
		{"ErrSectionInjection", ErrSectionInjection},
		{"ErrImageUpload", ErrImageUpload},
		{"ErrRender", ErrRender},
		{"ErrEmailSend", ErrEmailSend},
		{"ErrRecipientLoad", ErrRecipientLoad},
		{"ErrMissingConfig", ErrMissingConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrDocumentCreation, ErrSectionInjection))
	assert.False(t, errors.Is(ErrImageUpload, ErrRender))
	assert.False(t, errors.Is(ErrEmailSend, ErrRecipientLoad))
}

func TestErrors_WrappedSentinelsSurviveFormatting(t *testing.T) {
	wrapped := fmt.Errorf("%w: section %q: boom", ErrSectionInjection, "Governance")

	assert.True(t, errors.Is(wrapped, ErrSectionInjection))
	assert.Contains(t, wrapped.Error(), "Governance")
}
