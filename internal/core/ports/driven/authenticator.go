package driven

import "context"

// Authenticator establishes that valid Google credentials are available
// before the pipeline makes any remote call. Implementations may trigger an
// interactive authorization flow.
type Authenticator interface {
	Authenticate(ctx context.Context) error
}
