package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultBaseDir    = "./uploads"
	DefaultStaticBase = "/static/uploads"
)

// LocalStorage writes blobs to the local filesystem under
// baseDir/YYYY/MM/DD/ and serves them from a static URL prefix.
type LocalStorage struct {
	baseDir    string
	staticBase string
}

func NewLocalStorage(baseDir, staticBase string) *LocalStorage {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if staticBase == "" {
		staticBase = DefaultStaticBase
	}
	return &LocalStorage{baseDir: baseDir, staticBase: staticBase}
}

func (s *LocalStorage) BaseDir() string { return s.baseDir }

func (s *LocalStorage) Save(ctx context.Context, storedName string, r io.Reader) (*SavedBlob, error) {
	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create dir: %v", ErrStorage, err)
	}

	absPath := filepath.Join(absDir, storedName)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: create file: %v", ErrStorage, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("%w: write file: %v", ErrStorage, err)
	}

	relPath := filepath.Join(relDir, storedName)
	return &SavedBlob{
		StoredName: storedName,
		Path:       relPath,
		URL:        s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"),
	}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	absPath := filepath.Join(s.baseDir, path)
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove file: %v", ErrStorage, err)
	}
	return nil
}
