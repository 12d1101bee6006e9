package storage

import (
	"context"
	"errors"
)

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// PutObject uploads body under objectKey.
	PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error

	// ObjectURL returns the public URL an uploaded object is served from.
	ObjectURL(objectKey string) string
}

var ErrEmptyObject = errors.New("refusing to store an empty object")
