package port

import (
	"context"
	"io"
)

// Storage defines object storage operations.
type Storage interface {
	InitBucket(bucket string) error
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	SaveLocalFile(ctx context.Context, bucket, fileKey, localPath, contentType string) error
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	// PublicURL returns the stable download URL for a stored object.
	PublicURL(bucket, fileKey string) string
}
