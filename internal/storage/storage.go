// Package storage is the boundary to the content-addressed store holding
// uploaded proof images.
package storage

import (
	"context"
	"fmt"
)

// ContentStore uploads proof images and resolves content hashes to URLs.
type ContentStore interface {
	Upload(ctx context.Context, filename string, data []byte) (contentHash string, err error)
	URLFor(contentHash string) string
}

// UploadError indicates the content store rejected or failed an upload.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
