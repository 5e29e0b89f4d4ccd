package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is a capability-scoped client for one configured bucket.
type ObjectStore interface {
	// Put stores a blob, overwriting any existing object at key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// SignedGetURL returns a retrieval URL valid for ttl. It does not check
	// that the key exists; the storage service will 404 at fetch time.
	SignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes a blob. A missing key is treated as success.
	Delete(ctx context.Context, key string) error
}
