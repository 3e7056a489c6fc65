// Package drive implements the content store on top of Google Drive.
// Uploaded banners are granted anyone-with-the-link read access so the
// Forms API can dereference them when rendering image items.
package drive

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/surveyor-cli/internal/connectors/google"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

const mimePNG = "image/png"

// Ensure Store implements the ContentStore port.
var _ driven.ContentStore = (*Store)(nil)

// Store uploads generated assets to the authenticated user's Drive.
type Store struct {
	svc     *drive.Service
	limiter *google.RateLimiter
}

// NewStore creates a Drive content store with the default rate limits.
func NewStore(svc *drive.Service) *Store {
	return &Store{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceDrive),
	}
}

// UploadPublicPNG uploads PNG bytes under the given name, grants public
// read access, and returns the file ID and a direct-view URL.
func (s *Store) UploadPublicPNG(ctx context.Context, name string, data []byte) (string, string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", "", err
	}

	meta := &drive.File{
		Name:     name,
		MimeType: mimePNG,
	}

	created, err := s.svc.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(mimePNG)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("%w: upload %s: %v", domain.ErrImageUpload, name, google.WrapError(err))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", "", err
	}

	perm := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}
	if _, err := s.svc.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return "", "", fmt.Errorf("%w: share %s: %v", domain.ErrImageUpload, name, google.WrapError(err))
	}

	url := PublicURL(created.Id)
	logger.Debug("uploaded %s as %s (%s)", name, created.Id, url)
	return created.Id, url, nil
}

// PublicURL builds the directly dereferenceable view URL for a Drive file.
func PublicURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", fileID)
}
