// Package formtext normalises free text before it is sent to the Forms API.
// Survey copy is often pasted from word processors and carries inline style
// fragments that render literally in a form, so everything user-visible is
// passed through Sanitize first.
package formtext

import (
	"regexp"
	"strings"
)

var (
	// styleDeclaration matches inline CSS-ish declarations such as
	// "font-family: Arial, sans-serif;" up to the closing semicolon.
	styleDeclaration = regexp.MustCompile(`(?i)font-family[:;]?.*?;`)

	// styleToken matches a bare property name left behind once the
	// declaration body is gone.
	styleToken = regexp.MustCompile(`(?i)font-family`)

	// whitespaceRun matches two or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s{2,}`)
)

// Sanitize normalises text for transmission to the remote form:
// embedded newlines become spaces, inline style declarations and bare style
// tokens are removed, whitespace runs collapse to a single space, and the
// result is trimmed. Sanitize is pure and idempotent.
func Sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = styleDeclaration.ReplaceAllString(text, "")
	text = styleToken.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
