package region

import (
	"context"
	"math"
	"time"

	"medialabel/internal/domain/asset"
)

// Service is the spatial annotation store. Degenerate boxes are rejected at
// this boundary because the schema carries no CHECK constraint for them.
// Boxes extending past the image's stored dimensions are allowed; listing
// flags them as a soft warning only.
type Service struct {
	repo   Repository
	assets AssetGetter
	labels LabelGetter
}

func NewService(repo Repository, assets AssetGetter, labels LabelGetter) *Service {
	return &Service{repo: repo, assets: assets, labels: labels}
}

func (s *Service) Create(ctx context.Context, assetID, ownerID int64, req CreateRegionRequest) (*Region, error) {
	a, err := s.assets.Get(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	if !a.IsImage() {
		return nil, ErrNotImageAsset
	}

	x, y := round2(*req.X), round2(*req.Y)
	w, h := round2(*req.Width), round2(*req.Height)
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if x < 0 || y < 0 {
		return nil, ErrNegativeOrigin
	}

	if err := s.checkLabel(ctx, req.LabelID, assetID); err != nil {
		return nil, err
	}

	now := time.Now()
	rg := &Region{
		AssetID:   assetID,
		LabelID:   req.LabelID,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, rg); err != nil {
		return nil, err
	}
	return rg, nil
}

func (s *Service) Update(ctx context.Context, regionID, ownerID int64, req UpdateRegionRequest) (*Region, error) {
	rg, err := s.getOwned(ctx, regionID, ownerID)
	if err != nil {
		return nil, err
	}

	x, y, w, h := rg.X, rg.Y, rg.Width, rg.Height
	if req.X != nil {
		x = round2(*req.X)
	}
	if req.Y != nil {
		y = round2(*req.Y)
	}
	if req.Width != nil {
		w = round2(*req.Width)
	}
	if req.Height != nil {
		h = round2(*req.Height)
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if x < 0 || y < 0 {
		return nil, ErrNegativeOrigin
	}
	if req.LabelID != nil {
		if err := s.checkLabel(ctx, *req.LabelID, rg.AssetID); err != nil {
			return nil, err
		}
		rg.LabelID = *req.LabelID
	}
	if req.Notes != nil {
		rg.Notes = *req.Notes
	}

	rg.X, rg.Y, rg.Width, rg.Height = x, y, w, h
	rg.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rg); err != nil {
		return nil, err
	}
	return rg, nil
}

// List returns the asset's regions in creation order with label name/color,
// flagging any box that extends past the stored image dimensions.
func (s *Service) List(ctx context.Context, assetID, ownerID int64, labelID *int64) ([]Row, error) {
	a, err := s.assets.Get(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByAsset(ctx, assetID, labelID)
	if err != nil {
		return nil, err
	}
	markOutOfBounds(rows, a)
	return rows, nil
}

func (s *Service) Delete(ctx context.Context, regionID, ownerID int64) error {
	if _, err := s.getOwned(ctx, regionID, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, regionID)
}

func (s *Service) getOwned(ctx context.Context, regionID, ownerID int64) (*Region, error) {
	rg, err := s.repo.GetByID(ctx, regionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.assets.Get(ctx, rg.AssetID, ownerID); err != nil {
		return nil, err
	}
	return rg, nil
}

func (s *Service) checkLabel(ctx context.Context, labelID, assetID int64) error {
	l, err := s.labels.GetByID(ctx, labelID)
	if err != nil {
		return err
	}
	if l.AssetID != assetID {
		return ErrLabelMismatch
	}
	return nil
}

func markOutOfBounds(rows []Row, a *asset.Asset) {
	if a.Width == nil || a.Height == nil {
		return
	}
	maxW, maxH := float64(*a.Width), float64(*a.Height)
	for i := range rows {
		if rows[i].X+rows[i].Width > maxW || rows[i].Y+rows[i].Height > maxH {
			rows[i].OutOfBounds = true
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
