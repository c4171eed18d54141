package port

import (
	"context"
	"io"
)

// UploadInput carries the data needed to store an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// ObjectStorage abstracts blob storage for uploaded résumé files.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
	Delete(ctx context.Context, bucket, key string) error
}
