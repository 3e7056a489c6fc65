package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Ensure terminalPrompt implements the decision port.
var _ driven.DecisionPrompt = (*terminalPrompt)(nil)

// terminalPrompt asks for confirmation on the controlling terminal. Without
// a terminal it declines, so unattended runs never send mail on a default.
type terminalPrompt struct {
	in    io.Reader
	out   io.Writer
	isTTY func() bool
}

func newTerminalPrompt() *terminalPrompt {
	return &terminalPrompt{
		in:    os.Stdin,
		out:   os.Stdout,
		isTTY: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Confirm prints the prompt and returns true only for "yes", matched
// case-insensitively. Anything else declines.
func (p *terminalPrompt) Confirm(_ context.Context, prompt string) (bool, error) {
	if !p.isTTY() {
		logger.Warn("no terminal attached, declining: %s", prompt)
		return false, nil
	}

	fmt.Fprintf(p.out, "%s %s ", styleTitle.Render(prompt), styleMuted.Render("[yes/no]"))

	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}

// Ensure tokenSourceAuthenticator implements the authenticator port.
var _ driven.Authenticator = (*tokenSourceAuthenticator)(nil)

// tokenSourceAuthenticator proves credentials are usable by forcing a token
// fetch before the pipeline touches any remote API.
type tokenSourceAuthenticator struct {
	live *liveServices
}

func (a *tokenSourceAuthenticator) Authenticate(_ context.Context) error {
	if a.live == nil || a.live.tokens == nil {
		return fmt.Errorf("google services not initialised")
	}
	_, err := a.live.tokens.Token()
	return err
}
