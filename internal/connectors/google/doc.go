// Package google provides shared infrastructure for the Google API
// connectors used by the surveyor pipeline.
//
// This package contains common utilities used by the forms, drive, gmail and
// docs connectors including:
//   - Credential loading with transparent token refresh and an interactive
//     authorization fallback
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each connector uses this package to create authenticated API clients:
//
//	creds, err := google.LoadCredentials(ctx, clientSecretPath, tokenPath, google.Scopes())
//	svc, err := google.NewFormsService(ctx, creds.TokenSource)
//
// # OAuth2 Scopes
//
// The pipeline uses these scopes:
//   - https://www.googleapis.com/auth/forms.body (restricted)
//   - https://www.googleapis.com/auth/drive (restricted)
//   - https://www.googleapis.com/auth/documents (restricted)
//   - https://www.googleapis.com/auth/gmail.send (restricted)
//
// For user-created internal apps, restricted scopes don't require verification.
package google
