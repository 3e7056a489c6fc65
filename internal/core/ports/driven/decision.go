package driven

import "context"

// DecisionPrompt supplies the external go/no-go decision that gates
// distribution. The pipeline blocks in its awaiting-confirmation state until
// the prompt resolves; the CLI adapter backs this with a terminal read.
type DecisionPrompt interface {
	// Confirm returns true only for an affirmative decision.
	Confirm(ctx context.Context, prompt string) (bool, error)
}
