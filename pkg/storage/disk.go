// Package storage abstracts the media sink that holds product images.
//
// Two drivers are available:
//   - "local" — local filesystem (default, development)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Handlers upload bytes and persist only the public URL the disk returns:
//
//	if err := disk.Put(ctx, "products/abc.jpg", data); err != nil { ... }
//	url := disk.URL("products/abc.jpg")
package storage

import (
	"context"
	"io"
)

// Disk is the media sink driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(ctx context.Context, path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(ctx context.Context, path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
