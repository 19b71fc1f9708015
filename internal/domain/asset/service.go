package asset

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"medialabel/internal/storage"

	"github.com/google/uuid"
)

const MaxFileSize = 200 * 1024 * 1024 // 200 MB

// allowedMimeTypes maps accepted upload types to the asset kind they produce.
var allowedMimeTypes = map[string]Kind{
	"audio/mpeg":  KindAudio,
	"audio/wav":   KindAudio,
	"audio/wave":  KindAudio,
	"audio/x-wav": KindAudio,
	"audio/ogg":   KindAudio,
	"audio/flac":  KindAudio,
	"image/jpeg":  KindImage,
	"image/png":   KindImage,
	"image/webp":  KindImage,
}

// Service owns asset records and their lifecycle. Blob persistence is
// delegated to FileStorage; a storage failure aborts creation before any row
// is written.
type Service struct {
	repo  Repository
	files storage.FileStorage
}

func NewService(repo Repository, files storage.FileStorage) *Service {
	return &Service{repo: repo, files: files}
}

// Create saves the blob and registers a draft asset. The stored filename is
// uuid-based and globally unique; the database constraint backs that up.
func (s *Service) Create(ctx context.Context, ownerID int64, form CreateAssetForm, fileHeader *multipart.FileHeader) (*Asset, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the MIME type from the first 512 bytes.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	kind, ok := allowedMimeTypes[mimeType]
	if !ok {
		// Sniffing misses some audio containers; fall back to the declared type.
		declared := strings.Split(fileHeader.Header.Get("Content-Type"), ";")[0]
		if k, okDeclared := allowedMimeTypes[declared]; okDeclared {
			kind, mimeType = k, declared
		} else {
			return nil, ErrInvalidMimeType
		}
	}
	if string(kind) != form.Kind {
		return nil, fmt.Errorf("%w: file is %s but request says %s", ErrValidation, kind, form.Kind)
	}
	if kind == KindAudio && form.Duration == nil {
		return nil, fmt.Errorf("%w: duration is required for audio assets", ErrValidation)
	}
	if kind == KindImage && (form.Width == nil || form.Height == nil) {
		return nil, fmt.Errorf("%w: width and height are required for image assets", ErrValidation)
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	ext := filepath.Ext(fileHeader.Filename)
	storedName := fmt.Sprintf("%s_%s%s", uuid.New().String(), sanitizeName(fileHeader.Filename), ext)

	blob, err := s.files.Save(ctx, storedName, file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a := &Asset{
		OwnerID:      ownerID,
		Kind:         kind,
		OriginalName: fileHeader.Filename,
		StoredName:   blob.StoredName,
		FilePath:     blob.Path,
		FileURL:      blob.URL,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		Title:        form.Title,
		Description:  form.Description,
		Status:       StatusDraft,
		UploadedAt:   now,
	}
	if kind == KindAudio {
		d := round3(*form.Duration)
		a.Duration = &d
	} else {
		a.Width = form.Width
		a.Height = form.Height
	}

	if err := s.repo.Create(ctx, a); err != nil {
		// Roll the blob back; the row never existed.
		_ = s.files.Delete(ctx, blob.Path)
		return nil, err
	}

	return a, nil
}

// Get returns the asset after verifying ownership.
func (s *Service) Get(ctx context.Context, id, ownerID int64) (*Asset, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return a, nil
}

func (s *Service) ListMine(ctx context.Context, ownerID int64) ([]*Asset, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateMetadata changes title and/or description. Nil fields are untouched.
func (s *Service) UpdateMetadata(ctx context.Context, id, ownerID int64, req UpdateMetadataRequest) (*Asset, error) {
	a, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// MarkLabeled moves draft -> labeled and stamps labeled_at. Marking an
// already labeled asset again is rejected: the lifecycle table has no
// labeled -> labeled edge.
func (s *Service) MarkLabeled(ctx context.Context, id, ownerID int64) (*Asset, error) {
	return s.transition(ctx, id, ownerID, StatusLabeled)
}

// MarkExported moves labeled -> exported. Normally invoked by the export
// coordinator inside its snapshot transaction.
func (s *Service) MarkExported(ctx context.Context, id, ownerID int64) (*Asset, error) {
	return s.transition(ctx, id, ownerID, StatusExported)
}

func (s *Service) transition(ctx context.Context, id, ownerID int64, to Status) (*Asset, error) {
	a, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(a.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	if to == StatusLabeled {
		now := time.Now()
		a.LabeledAt = &now
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SoftDelete tombstones the asset. Labels and annotations stay in place so
// that issued export artifacts remain traceable; physical cleanup is
// HardDelete's job.
func (s *Service) SoftDelete(ctx context.Context, id, ownerID int64) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

// HardDelete removes the asset row, its labels, segments, regions and the
// stored blob.
func (s *Service) HardDelete(ctx context.Context, id, ownerID int64) error {
	a, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return err
	}
	_ = s.files.Delete(ctx, a.FilePath) // file may already be gone
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
