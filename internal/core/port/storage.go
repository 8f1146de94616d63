package port

import (
	"context"
	"io"
	"time"
)

// BlobStorage is a uniform byte-durable store contract (object store, local
// filesystem, ...). Keys are slash-separated paths.
type BlobStorage interface {
	Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Read(ctx context.Context, key string) (io.ReadCloser, error)
	// ReadHeader returns up to n leading bytes of the object
	ReadHeader(ctx context.Context, key string, n int64) ([]byte, error)
	Stat(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
	// DeleteAll removes every object under the given key prefix
	DeleteAll(ctx context.Context, prefix string) error
	PresignedDownloadURL(ctx context.Context, key string) (string, *time.Time, error)
}
