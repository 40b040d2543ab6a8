package ports

import (
	"context"
	"io"
)

// StoragePort is the blob-store collaborator for vehicle photos. Upload
// returns the stable retrieval address for the stored object.
type StoragePort interface {
	Upload(ctx context.Context, body io.Reader, key string) (string, error)
	PublicURL(key string) string
}
