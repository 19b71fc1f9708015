package asset

import (
	"context"
	"io"
	"testing"
	"time"

	"medialabel/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, a *Asset) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id int64) (*Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*Asset, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Asset), args.Error(1)
}

func (m *MockAssetRepository) Update(ctx context.Context, a *Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssetRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) HardDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, storedName string, r io.Reader) (*storage.SavedBlob, error) {
	args := m.Called(ctx, storedName, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.SavedBlob), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func draftAsset(ownerID int64) *Asset {
	d := 120.5
	return &Asset{
		ID:         1,
		OwnerID:    ownerID,
		Kind:       KindAudio,
		StoredName: "abc_interview.wav",
		Duration:   &d,
		Status:     StatusDraft,
		UploadedAt: time.Now(),
	}
}

func TestService_Get_OwnershipEnforced(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	repo.On("GetByID", mock.Anything, int64(1)).Return(draftAsset(42), nil)

	_, err := service.Get(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrNotOwner)

	a, err := service.Get(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), a.OwnerID)
}

func TestService_MarkLabeled_SetsStatusAndTimestamp(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	repo.On("GetByID", mock.Anything, int64(1)).Return(draftAsset(42), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	a, err := service.MarkLabeled(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.Equal(t, StatusLabeled, a.Status)
	assert.NotNil(t, a.LabeledAt)
}

func TestService_MarkLabeled_RepeatedCallRejected(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	labeled := draftAsset(42)
	labeled.Status = StatusLabeled
	repo.On("GetByID", mock.Anything, int64(1)).Return(labeled, nil)

	_, err := service.MarkLabeled(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_MarkExported_RequiresLabeled(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	repo.On("GetByID", mock.Anything, int64(1)).Return(draftAsset(42), nil)

	_, err := service.MarkExported(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_MarkExported_FromLabeled(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	labeled := draftAsset(42)
	labeled.Status = StatusLabeled
	repo.On("GetByID", mock.Anything, int64(1)).Return(labeled, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	a, err := service.MarkExported(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.Equal(t, StatusExported, a.Status)
}

func TestService_UpdateMetadata_PartialFields(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	existing := draftAsset(42)
	existing.Title = "old title"
	existing.Description = "old description"
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	title := "new title"
	a, err := service.UpdateMetadata(context.Background(), 1, 42, UpdateMetadataRequest{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "new title", a.Title)
	assert.Equal(t, "old description", a.Description)
}

func TestService_HardDelete_RemovesBlob(t *testing.T) {
	repo := new(MockAssetRepository)
	files := new(MockFileStorage)
	service := NewService(repo, files)

	a := draftAsset(42)
	a.FilePath = "2026/08/30/abc_interview.wav"
	repo.On("GetByID", mock.Anything, int64(1)).Return(a, nil)
	repo.On("HardDelete", mock.Anything, int64(1)).Return(nil)
	files.On("Delete", mock.Anything, a.FilePath).Return(nil)

	err := service.HardDelete(context.Background(), 1, 42)
	assert.NoError(t, err)
	files.AssertCalled(t, "Delete", mock.Anything, a.FilePath)
}

func TestCanTransition_Table(t *testing.T) {
	assert.True(t, CanTransition(StatusDraft, StatusLabeled))
	assert.True(t, CanTransition(StatusLabeled, StatusExported))

	assert.False(t, CanTransition(StatusDraft, StatusExported))
	assert.False(t, CanTransition(StatusLabeled, StatusLabeled))
	assert.False(t, CanTransition(StatusExported, StatusDraft))
	assert.False(t, CanTransition(StatusExported, StatusLabeled))
}
