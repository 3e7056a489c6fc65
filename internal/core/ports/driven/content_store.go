package driven

import "context"

// ContentStore uploads generated assets and makes them publicly reachable.
type ContentStore interface {
	// UploadPublicPNG uploads PNG bytes under the given name, grants
	// anyone-with-the-link read access, and returns the file ID and a
	// directly dereferenceable URL.
	UploadPublicPNG(ctx context.Context, name string, data []byte) (fileID, url string, err error)
}

// BannerRenderer produces a section header banner image.
type BannerRenderer interface {
	// Render draws the title and description into a fixed-aspect PNG.
	// Font unavailability falls back to a default face and is not an error.
	Render(title, description string) ([]byte, error)
}
