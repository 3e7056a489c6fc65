package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessage(t *testing.T) {
	raw := encodeMessage("ops@centralbank.example", "Survey Invitation", "<p>Hello</p>")

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err, "Raw must be valid base64url")

	msg := string(decoded)
	headers, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found, "message must separate headers from body with a blank line")

	assert.Contains(t, headers, "To: ops@centralbank.example")
	assert.Contains(t, headers, "Subject: Survey Invitation")
	assert.Contains(t, headers, "MIME-Version: 1.0")
	assert.Contains(t, headers, `Content-Type: text/html; charset="utf-8"`)
	assert.Equal(t, "<p>Hello</p>", body)
}

func TestEncodeMessage_NonASCIISubject(t *testing.T) {
	raw := encodeMessage("a@b.example", "Enquête régionale", "<p>Bonjour</p>")

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)

	// Non-ASCII subjects must be MIME-word encoded, not sent verbatim.
	assert.Contains(t, string(decoded), "=?utf-8?q?")
}
