package label

import (
	"context"
	"testing"

	"medialabel/internal/domain/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) Create(ctx context.Context, l *Label) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLabelRepository) GetByID(ctx context.Context, id int64) (*Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Label), args.Error(1)
}

func (m *MockLabelRepository) ListByAsset(ctx context.Context, assetID int64, activeOnly bool) ([]*Label, error) {
	args := m.Called(ctx, assetID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Label), args.Error(1)
}

func (m *MockLabelRepository) Update(ctx context.Context, l *Label) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLabelRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssetGetter struct {
	mock.Mock
}

func (m *MockAssetGetter) Get(ctx context.Context, id, ownerID int64) (*asset.Asset, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asset.Asset), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockLabelRepository)
	assets := new(MockAssetGetter)
	service := NewService(repo, assets)

	assets.On("Get", mock.Anything, int64(5), int64(42)).Return(&asset.Asset{ID: 5, OwnerID: 42}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	l, err := service.Create(context.Background(), 5, 42, CreateLabelRequest{
		Name:  "Speech",
		Color: "#ef4444",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Speech", l.Name)
	assert.Equal(t, "#ef4444", l.Color)
	assert.True(t, l.IsActive)
}

func TestService_Create_InvalidColor(t *testing.T) {
	repo := new(MockLabelRepository)
	assets := new(MockAssetGetter)
	service := NewService(repo, assets)

	assets.On("Get", mock.Anything, int64(5), int64(42)).Return(&asset.Asset{ID: 5, OwnerID: 42}, nil)

	for _, color := range []string{"ef4444", "#ef44", "#ef4444ff", "#gggggg", "red"} {
		_, err := service.Create(context.Background(), 5, 42, CreateLabelRequest{Name: "Speech", Color: color})
		assert.ErrorIs(t, err, ErrInvalidColor, "color %q should be rejected", color)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := new(MockLabelRepository)
	assets := new(MockAssetGetter)
	service := NewService(repo, assets)

	assets.On("Get", mock.Anything, int64(5), int64(42)).Return(&asset.Asset{ID: 5, OwnerID: 42}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(ErrDuplicateName)

	_, err := service.Create(context.Background(), 5, 42, CreateLabelRequest{Name: "Noise", Color: "#3b82f6"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Create_AssetNotOwned(t *testing.T) {
	repo := new(MockLabelRepository)
	assets := new(MockAssetGetter)
	service := NewService(repo, assets)

	assets.On("Get", mock.Anything, int64(5), int64(7)).Return(nil, asset.ErrNotOwner)

	_, err := service.Create(context.Background(), 5, 7, CreateLabelRequest{Name: "Speech", Color: "#ef4444"})
	assert.ErrorIs(t, err, asset.ErrNotOwner)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Deactivate_SoftToggle(t *testing.T) {
	repo := new(MockLabelRepository)
	assets := new(MockAssetGetter)
	service := NewService(repo, assets)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&Label{ID: 3, AssetID: 5, Name: "Speech", IsActive: true}, nil)
	assets.On("Get", mock.Anything, int64(5), int64(42)).Return(&asset.Asset{ID: 5, OwnerID: 42}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	l, err := service.Deactivate(context.Background(), 3, 42)
	assert.NoError(t, err)
	assert.False(t, l.IsActive)
	// deactivation is not deletion
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_List_ActiveOnlyPassedThrough(t *testing.T) {
	repo := new(MockLabelRepository)
	assets := new(MockAssetGetter)
	service := NewService(repo, assets)

	assets.On("Get", mock.Anything, int64(5), int64(42)).Return(&asset.Asset{ID: 5, OwnerID: 42}, nil)
	repo.On("ListByAsset", mock.Anything, int64(5), true).Return([]*Label{{ID: 1, Name: "Speech"}}, nil)

	labels, err := service.List(context.Background(), 5, 42, true)
	assert.NoError(t, err)
	assert.Len(t, labels, 1)
	repo.AssertCalled(t, "ListByAsset", mock.Anything, int64(5), true)
}
