package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/label"
	"medialabel/internal/domain/region"
	"medialabel/internal/domain/segment"

	"gorm.io/gorm"
)

type Repository interface {
	ExportSnapshot(ctx context.Context, assetID, ownerID int64) (*Artifact, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ExportSnapshot reads (asset, labels, segments, regions) and flips the
// asset to exported inside a single transaction. One concurrent editor per
// asset is the modeled scenario, so a snapshot read is enough; no advisory
// lock is taken.
func (r *repository) ExportSnapshot(ctx context.Context, assetID, ownerID int64) (*Artifact, error) {
	var art Artifact

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a asset.Asset
		err := tx.Where("id = ?", assetID).First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return asset.ErrAssetNotFound
		}
		if err != nil {
			return err
		}
		if a.OwnerID != ownerID {
			return asset.ErrNotOwner
		}
		if !asset.CanTransition(a.Status, asset.StatusExported) {
			return fmt.Errorf("%w: %s -> %s", asset.ErrInvalidTransition, a.Status, asset.StatusExported)
		}

		var labels []*label.Label
		if err := tx.Where("asset_id = ?", assetID).Order("id ASC").Find(&labels).Error; err != nil {
			return err
		}

		var segments []segment.Row
		if err := tx.Table("segments").
			Select("segments.*, labels.name AS label_name, labels.color AS label_color").
			Joins("JOIN labels ON labels.id = segments.label_id").
			Where("segments.asset_id = ?", assetID).
			Order("segments.start_time ASC").
			Scan(&segments).Error; err != nil {
			return err
		}

		var regions []region.Row
		if err := tx.Table("regions").
			Select("regions.*, labels.name AS label_name, labels.color AS label_color").
			Joins("JOIN labels ON labels.id = regions.label_id").
			Where("regions.asset_id = ?", assetID).
			Order("regions.id ASC").
			Scan(&regions).Error; err != nil {
			return err
		}

		a.Status = asset.StatusExported
		if err := tx.Save(&a).Error; err != nil {
			return err
		}

		art = Artifact{
			Asset:       &a,
			Labels:      labels,
			Segments:    segments,
			Regions:     regions,
			GeneratedAt: time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &art, nil
}
