package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"item-matcher/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens the raw bytes of one catalog.
type Source interface {
	// Name describes the source for logs and cache keys.
	Name() string

	// Open returns a reader over the catalog content. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a catalog from the local filesystem.
type FileSource struct {
	Path string
}

// Name returns the file path.
func (s FileSource) Name() string {
	return "file:" + s.Path
}

// Open opens the file.
func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	return f, nil
}

// ObjectSource reads a catalog from an object in a storage bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Name returns the bucket and object name.
func (s ObjectSource) Name() string {
	return "object:" + s.Bucket + "/" + s.Object
}

// Open downloads the object.
func (s ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	reader, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object: %w", err)
	}
	return reader, nil
}

// Fetch opens a source and decodes it into a catalog.
func Fetch(ctx context.Context, src Source) (*Catalog, error) {
	reader, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailure, src.Name(), err)
	}
	defer reader.Close()

	c, err := Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}
	return c, nil
}
