package repositories

import (
	"context"
	"io"
	"time"
)

// AssetStore is a bucket of proof-of-payment blobs.
type AssetStore interface {
	// Upload stores data under name and returns the canonical key.
	Upload(ctx context.Context, name string, contentType string, data []byte) (string, error)

	// PublicURL returns the retrievable reference persisted on the record.
	PublicURL(name string) string

	// CreateSignedURL returns a time-limited URL for private access.
	CreateSignedURL(ctx context.Context, name string, ttl time.Duration) (string, time.Time, error)

	// Open verifies a signed token for name and opens the blob.
	Open(ctx context.Context, name string, token string) (io.ReadCloser, string, error)
}
