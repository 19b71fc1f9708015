package storage

import (
	"context"
	"errors"
	"io"
)

// ErrStorage wraps any failure of the underlying blob store. Callers treat it
// as opaque; retry policy belongs to them, not here.
var ErrStorage = errors.New("storage failure")

// SavedBlob describes where a stored blob ended up.
type SavedBlob struct {
	StoredName string // globally unique filename
	Path       string // relative path inside the store
	URL        string // public URL for serving
}

// FileStorage persists and removes the binary blobs behind media assets.
type FileStorage interface {
	Save(ctx context.Context, storedName string, r io.Reader) (*SavedBlob, error)
	Delete(ctx context.Context, path string) error
}
