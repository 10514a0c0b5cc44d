package port

import "context"

// ObjectStorage is an interface to define object storage interactions.
// Implementations classify failures into the domain's transient/terminal
// sentinels so callers can decide whether a retry is worthwhile.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
