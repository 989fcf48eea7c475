package storage

import (
	"context"
	"time"
)

// IS3Client works with S3-compatible object storage (MinIO).
type IS3Client interface {
	PutFile(ctx context.Context, path string, data []byte, contentType string) error
	GetFile(ctx context.Context, path string) ([]byte, error)
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	GetPresignedURL(ctx context.Context, path string, expires time.Duration) (string, error)
}
