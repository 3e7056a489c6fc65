package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrompt(input string, tty bool) *terminalPrompt {
	return &terminalPrompt{
		in:    strings.NewReader(input),
		out:   new(bytes.Buffer),
		isTTY: func() bool { return tty },
	}
}

func TestTerminalPrompt_AcceptsYes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "uppercase", input: "YES\n", want: true},
		{name: "mixed case", input: "Yes\n", want: true},
		{name: "short form rejected", input: "y\n", want: false},
		{name: "padded", input: "  yes  \n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty", input: "\n", want: false},
		{name: "anything else", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testPrompt(tt.input, true).Confirm(context.Background(), "Distribute?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalPrompt_DeclinesWithoutTerminal(t *testing.T) {
	got, err := testPrompt("yes\n", false).Confirm(context.Background(), "Distribute?")

	require.NoError(t, err)
	assert.False(t, got, "unattended runs must never distribute by default")
}

func TestTerminalPrompt_AcceptsFinalLineWithoutNewline(t *testing.T) {
	got, err := testPrompt("yes", true).Confirm(context.Background(), "Distribute?")

	require.NoError(t, err)
	assert.True(t, got)
}
