package label

import (
	"context"
	"regexp"
	"strings"
	"time"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service is the per-asset label catalog. Every operation first resolves the
// owning asset through AssetGetter, which enforces existence and ownership.
type Service struct {
	repo   Repository
	assets AssetGetter
}

func NewService(repo Repository, assets AssetGetter) *Service {
	return &Service{repo: repo, assets: assets}
}

// Create adds a label to the asset's vocabulary. A duplicate name leaves the
// existing label untouched; the database unique index on (asset_id, name)
// backs up the check.
func (s *Service) Create(ctx context.Context, assetID, ownerID int64, req CreateLabelRequest) (*Label, error) {
	if _, err := s.assets.Get(ctx, assetID, ownerID); err != nil {
		return nil, err
	}
	if !colorPattern.MatchString(req.Color) {
		return nil, ErrInvalidColor
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	l := &Label{
		AssetID:     assetID,
		Name:        name,
		Color:       req.Color,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns the asset's labels in creation order. activeOnly hides
// deactivated labels from pickers; they remain valid annotation targets.
func (s *Service) List(ctx context.Context, assetID, ownerID int64, activeOnly bool) ([]*Label, error) {
	if _, err := s.assets.Get(ctx, assetID, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListByAsset(ctx, assetID, activeOnly)
}

func (s *Service) Update(ctx context.Context, labelID, ownerID int64, req UpdateLabelRequest) (*Label, error) {
	l, err := s.getOwned(ctx, labelID, ownerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		l.Name = name
	}
	if req.Color != nil {
		if !colorPattern.MatchString(*req.Color) {
			return nil, ErrInvalidColor
		}
		l.Color = *req.Color
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Deactivate is the soft toggle: the label disappears from pickers but keeps
// rendering on historical annotations.
func (s *Service) Deactivate(ctx context.Context, labelID, ownerID int64) (*Label, error) {
	l, err := s.getOwned(ctx, labelID, ownerID)
	if err != nil {
		return nil, err
	}
	l.IsActive = false
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete hard-removes the label; its segments and regions go with it.
func (s *Service) Delete(ctx context.Context, labelID, ownerID int64) error {
	if _, err := s.getOwned(ctx, labelID, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, labelID)
}

func (s *Service) getOwned(ctx context.Context, labelID, ownerID int64) (*Label, error) {
	l, err := s.repo.GetByID(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if _, err := s.assets.Get(ctx, l.AssetID, ownerID); err != nil {
		return nil, err
	}
	return l, nil
}
