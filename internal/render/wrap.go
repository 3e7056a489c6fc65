package render

import (
	"strings"

	"golang.org/x/image/font"
)

// wrapText greedily packs words into lines no wider than maxWidth pixels,
// measured with the given face. A single word wider than maxWidth gets its
// own line rather than being split mid-word.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}

	return append(lines, current)
}
