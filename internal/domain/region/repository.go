package region

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rg *Region) error
	GetByID(ctx context.Context, id int64) (*Region, error)
	ListByAsset(ctx context.Context, assetID int64, labelID *int64) ([]Row, error)
	Update(ctx context.Context, rg *Region) error
	Delete(ctx context.Context, id int64) error
	CountByAsset(ctx context.Context, assetID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rg *Region) error {
	return r.db.WithContext(ctx).Create(rg).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Region, error) {
	var rg Region
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rg, nil
}

// ListByAsset returns regions in creation order; rectangles carry no
// inherent spatial ordering.
func (r *repository) ListByAsset(ctx context.Context, assetID int64, labelID *int64) ([]Row, error) {
	var rows []Row
	q := r.db.WithContext(ctx).
		Table("regions").
		Select("regions.*, labels.name AS label_name, labels.color AS label_color").
		Joins("JOIN labels ON labels.id = regions.label_id").
		Where("regions.asset_id = ?", assetID)
	if labelID != nil {
		q = q.Where("regions.label_id = ?", *labelID)
	}
	err := q.Order("regions.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rg *Region) error {
	return r.db.WithContext(ctx).Save(rg).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Region{}, id).Error
}

func (r *repository) CountByAsset(ctx context.Context, assetID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Region{}).Where("asset_id = ?", assetID).Count(&n).Error
	return n, err
}
