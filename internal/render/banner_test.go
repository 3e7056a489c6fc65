package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13 // fixed 7px advance makes widths deterministic

	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     []string
	}{
		{
			name:     "empty",
			text:     "",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "whitespace only",
			text:     "   \n\t  ",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "single short line",
			text:     "Payment Systems",
			maxWidth: 700,
			want:     []string{"Payment Systems"},
		},
		{
			name:     "wraps at width",
			text:     "alpha beta gamma",
			maxWidth: 11 * 7, // fits "alpha beta" (10 chars) but not "+ gamma"
			want:     []string{"alpha beta", "gamma"},
		},
		{
			name:     "oversized word gets its own line",
			text:     "ok incomprehensibilities ok",
			maxWidth: 10 * 7,
			want:     []string{"ok", "incomprehensibilities", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(face, tt.text, tt.maxWidth))
		})
	}
}

func TestWrapText_NeverExceedsWidthExceptSingleWords(t *testing.T) {
	face := basicfont.Face7x13
	text := "The regional financial market infrastructure readiness questionnaire covers governance settlement and oversight"
	maxWidth := 200

	for _, line := range wrapText(face, text, maxWidth) {
		if strings.Contains(line, " ") {
			assert.LessOrEqual(t, font.MeasureString(face, line).Ceil(), maxWidth,
				"multi-word line %q exceeds max width", line)
		}
	}
}

func TestRender_ProducesFixedGeometryPNG(t *testing.T) {
	b := NewBannerWithFaces(basicfont.Face7x13, basicfont.Face7x13)

	data, err := b.Render("Governance and Oversight", "Structures, mandates and accountability")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output must be a decodable PNG")

	bounds := img.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
	assert.Equal(t, 4, bounds.Dx()/bounds.Dy(), "banner keeps a 4:1 aspect ratio")
}

func TestRender_EmptyDescription(t *testing.T) {
	b := NewBannerWithFaces(basicfont.Face7x13, basicfont.Face7x13)

	data, err := b.Render("Title Only", "")
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}
