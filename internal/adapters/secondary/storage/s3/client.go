package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/ports/storage"
	"github.com/minio/minio-go/v7"
	"log/slog"
)

// Client wraps minio.Client for report archive storage
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewClient creates a new S3 client
func NewClient(client *minio.Client, bucket string, log *slog.Logger) storage.IS3Client {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// PutFile stores data under path
func (c *Client) PutFile(ctx context.Context, path string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.client.PutObject(ctx, c.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", path, err)
	}

	c.log.Debug("object stored", "path", path, "size", len(data))
	return nil
}

// GetFile fetches the file at path
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}

	return data, nil
}

// ListFiles lists object keys under prefix
func (c *Client) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	var files []string

	objectCh := c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects with prefix %s: %w", prefix, object.Err)
		}

		// skip directory markers
		if object.Key[len(object.Key)-1] != '/' {
			files = append(files, object.Key)
		}
	}

	return files, nil
}

// GetPresignedURL generates a presigned URL for the file
func (c *Client) GetPresignedURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = 5 * time.Minute
	}

	url, err := c.client.PresignedGetObject(ctx, c.bucket, path, expires, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL for %s: %w", path, err)
	}

	return url.String(), nil
}
