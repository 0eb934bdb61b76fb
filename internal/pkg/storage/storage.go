package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

type FileStorage interface {
	// Open returns a reader over a stored file; the caller closes it
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Replace writes content to path so that readers see either the old or the new file
	Replace(ctx context.Context, content io.Reader, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
