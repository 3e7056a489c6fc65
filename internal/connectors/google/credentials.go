package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/custodia-labs/surveyor-cli/internal/adapters/driving/oauth"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// Scopes returns the OAuth2 scopes the survey pipeline requires.
func Scopes() []string {
	return []string{
		"https://www.googleapis.com/auth/forms.body",
		"https://www.googleapis.com/auth/drive",
		"https://www.googleapis.com/auth/documents",
		"https://www.googleapis.com/auth/gmail.send",
	}
}

// Credentials holds an authorized OAuth2 token source backed by a token
// cache file. Refreshed tokens are persisted back to the cache.
type Credentials struct {
	Config      *oauth2.Config
	TokenSource oauth2.TokenSource
}

// LoadCredentials loads the OAuth2 client configuration from a client secret
// JSON file and returns a token source backed by the token cache at tokenPath.
//
// If the cache holds a valid or refreshable token it is used directly.
// Otherwise an interactive authorization flow is started: a local callback
// server is spun up, the user's browser is opened to the consent page, and
// the resulting token is exchanged and written to the cache.
func LoadCredentials(ctx context.Context, clientSecretPath, tokenPath string, scopes []string) (*Credentials, error) {
	secret, err := os.ReadFile(clientSecretPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read client secret %s: %v", domain.ErrAuth, clientSecretPath, err)
	}

	cfg, err := googleoauth.ConfigFromJSON(secret, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secret: %v", domain.ErrAuth, err)
	}

	tok, err := readCachedToken(tokenPath)
	if err != nil {
		// Cache miss or unreadable cache both mean interactive authorization.
		tok, err = authorizeInteractive(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := writeCachedToken(tokenPath, tok); err != nil {
			return nil, err
		}
	}

	return &Credentials{
		Config: cfg,
		TokenSource: &persistingTokenSource{
			base:      cfg.TokenSource(ctx, tok),
			tokenPath: tokenPath,
			last:      tok,
		},
	}, nil
}

// persistingTokenSource wraps the oauth2 refresh flow and writes any newly
// refreshed token back to the cache file.
type persistingTokenSource struct {
	mu        sync.Mutex
	base      oauth2.TokenSource
	tokenPath string
	last      *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.base.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: obtain access token: %v", domain.ErrAuth, err)
	}

	if s.last == nil || tok.AccessToken != s.last.AccessToken {
		if err := writeCachedToken(s.tokenPath, tok); err != nil {
			return nil, err
		}
		s.last = tok
	}

	return tok, nil
}

// authorizeInteractive runs the local-callback authorization flow and returns
// the exchanged token.
func authorizeInteractive(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	state := oauth.GenerateCodeVerifier()
	verifier := oauth.GenerateCodeVerifier()
	challenge := oauth.GenerateCodeChallenge(verifier)

	srv := oauth.NewCallbackServer(0, state)
	if err := srv.Start(); err != nil {
		return nil, fmt.Errorf("%w: start callback server: %v", domain.ErrAuth, err)
	}
	defer srv.Stop() //nolint:errcheck // shutdown error is not actionable here

	cfg.RedirectURL = srv.RedirectURI()

	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	fmt.Printf("Opening browser for Google authorization...\nIf it does not open, visit:\n%s\n", authURL)
	if err := oauth.OpenBrowser(authURL); err != nil {
		fmt.Println("Could not open browser automatically; use the URL above.")
	}

	code, err := srv.WaitForCode(5 * time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%w: authorization callback: %v", domain.ErrAuth, err)
	}

	tok, err := cfg.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: exchange authorization code: %v", domain.ErrAuth, err)
	}

	return tok, nil
}

func readCachedToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token cache %s: %w", path, err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token cache %s holds no usable token", path)
	}

	return &tok, nil
}

func writeCachedToken(path string, tok *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token cache directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write token cache %s: %w", path, err)
	}

	return nil
}
