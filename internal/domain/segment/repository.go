package segment

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Segment) error
	GetByID(ctx context.Context, id int64) (*Segment, error)
	ListByAsset(ctx context.Context, assetID int64, labelID *int64) ([]Row, error)
	Update(ctx context.Context, s *Segment) error
	Delete(ctx context.Context, id int64) error
	CountByAsset(ctx context.Context, assetID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Segment) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Segment, error) {
	var s Segment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSegmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByAsset returns segments sorted ascending by start_time, each joined
// with its label's name and color for timeline rendering.
func (r *repository) ListByAsset(ctx context.Context, assetID int64, labelID *int64) ([]Row, error) {
	var rows []Row
	q := r.db.WithContext(ctx).
		Table("segments").
		Select("segments.*, labels.name AS label_name, labels.color AS label_color").
		Joins("JOIN labels ON labels.id = segments.label_id").
		Where("segments.asset_id = ?", assetID)
	if labelID != nil {
		q = q.Where("segments.label_id = ?", *labelID)
	}
	err := q.Order("segments.start_time ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, s *Segment) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Segment{}, id).Error
}

func (r *repository) CountByAsset(ctx context.Context, assetID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Segment{}).Where("asset_id = ?", assetID).Count(&n).Error
	return n, err
}
