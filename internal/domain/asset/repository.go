package asset

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id int64) (*Asset, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Asset, error)
	Update(ctx context.Context, a *Asset) error
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Asset) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if isUniqueViolation(err) {
		return ErrDuplicateStoredName
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Asset, error) {
	var a Asset
	// gorm soft delete hides tombstoned rows here, which is exactly the
	// NotFound contract for deleted assets.
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID int64) ([]*Asset, error) {
	var assets []*Asset
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("uploaded_at DESC").
		Find(&assets).Error
	return assets, err
}

func (r *repository) Update(ctx context.Context, a *Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Asset{}, id).Error
}

// HardDelete removes the asset row and every label, segment and region that
// references it, in one transaction. Tombstoned rows are reachable here:
// hard delete is the authority-level cleanup behind soft delete.
func (r *repository) HardDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM segments WHERE asset_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM regions WHERE asset_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM labels WHERE asset_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Asset{}, id).Error
	})
}

// isUniqueViolation maps driver-level unique constraint failures. Postgres
// reports 23505 through pgconn; the sqlite driver only exposes the message.
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
