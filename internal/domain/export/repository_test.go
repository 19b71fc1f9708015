package export

import (
	"context"
	"testing"
	"time"

	"medialabel/internal/database"
	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/label"
	"medialabel/internal/domain/region"
	"medialabel/internal/domain/segment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&asset.Asset{},
		&label.Label{},
		&segment.Segment{},
		&region.Region{},
	))
	return db
}

func seedLabeledAudio(t *testing.T, db *gorm.DB) (*asset.Asset, *label.Label) {
	d := 120.5
	now := time.Now()
	a := &asset.Asset{
		OwnerID:    42,
		Kind:       asset.KindAudio,
		StoredName: "export_test.wav",
		Duration:   &d,
		Status:     asset.StatusLabeled,
		LabeledAt:  &now,
		UploadedAt: now,
	}
	require.NoError(t, db.Create(a).Error)

	l := &label.Label{AssetID: a.ID, Name: "Speech", Color: "#ef4444", IsActive: true, CreatedAt: now}
	require.NoError(t, db.Create(l).Error)
	return a, l
}

func TestExportSnapshot_IncludesEverythingAndTransitions(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	a, l := seedLabeledAudio(t, db)
	segs := []segment.Segment{
		{AssetID: a.ID, LabelID: l.ID, StartTime: 2.0, EndTime: 5.25, Duration: 3.25},
		{AssetID: a.ID, LabelID: l.ID, StartTime: 0.5, EndTime: 1.0, Duration: 0.5},
	}
	for i := range segs {
		require.NoError(t, db.Create(&segs[i]).Error)
	}

	art, err := repo.ExportSnapshot(context.Background(), a.ID, 42)
	require.NoError(t, err)

	assert.Equal(t, asset.StatusExported, art.Asset.Status)
	assert.Len(t, art.Labels, 1)
	require.Len(t, art.Segments, 2)
	// snapshot keeps timeline order
	assert.Equal(t, 0.5, art.Segments[0].StartTime)
	assert.Equal(t, "Speech", art.Segments[0].LabelName)
	assert.Equal(t, "#ef4444", art.Segments[0].LabelColor)
	assert.False(t, art.GeneratedAt.IsZero())

	// the transition was persisted
	var reloaded asset.Asset
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	assert.Equal(t, asset.StatusExported, reloaded.Status)
}

func TestExportSnapshot_DraftAssetRejected(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	d := 10.0
	a := &asset.Asset{OwnerID: 42, Kind: asset.KindAudio, StoredName: "draft.wav", Duration: &d, Status: asset.StatusDraft, UploadedAt: time.Now()}
	require.NoError(t, db.Create(a).Error)

	_, err := repo.ExportSnapshot(context.Background(), a.ID, 42)
	assert.ErrorIs(t, err, asset.ErrInvalidTransition)

	var reloaded asset.Asset
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	assert.Equal(t, asset.StatusDraft, reloaded.Status)
}

func TestExportSnapshot_RepeatedExportRejected(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	a, _ := seedLabeledAudio(t, db)

	_, err := repo.ExportSnapshot(context.Background(), a.ID, 42)
	require.NoError(t, err)

	_, err = repo.ExportSnapshot(context.Background(), a.ID, 42)
	assert.ErrorIs(t, err, asset.ErrInvalidTransition)
}

func TestExportSnapshot_OwnershipEnforced(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	a, _ := seedLabeledAudio(t, db)

	_, err := repo.ExportSnapshot(context.Background(), a.ID, 7)
	assert.ErrorIs(t, err, asset.ErrNotOwner)
}

func TestExportSnapshot_UnknownAsset(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	_, err := repo.ExportSnapshot(context.Background(), 12345, 42)
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)
}
