package label

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, l *Label) error
	GetByID(ctx context.Context, id int64) (*Label, error)
	ListByAsset(ctx context.Context, assetID int64, activeOnly bool) ([]*Label, error)
	Update(ctx context.Context, l *Label) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Label) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Label, error) {
	var l Label
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLabelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByAsset returns labels in creation order, the order pickers render them in.
func (r *repository) ListByAsset(ctx context.Context, assetID int64, activeOnly bool) ([]*Label, error) {
	var labels []*Label
	q := r.db.WithContext(ctx).Where("asset_id = ?", assetID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("id ASC").Find(&labels).Error
	return labels, err
}

func (r *repository) Update(ctx context.Context, l *Label) error {
	err := r.db.WithContext(ctx).Save(l).Error
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

// Delete hard-removes the label and every segment/region referencing it,
// in one transaction.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM segments WHERE label_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM regions WHERE label_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Label{}, id).Error
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
