package segment

import (
	"context"
	"math"
	"time"
)

// Service is the temporal annotation store. Overlapping segments on the same
// asset are allowed on purpose: simultaneous labels like "speech" and
// "background noise" are a feature, so there is no de-overlap check anywhere.
type Service struct {
	repo   Repository
	assets AssetGetter
	labels LabelGetter
}

func NewService(repo Repository, assets AssetGetter, labels LabelGetter) *Service {
	return &Service{repo: repo, assets: assets, labels: labels}
}

// Create validates the range and the same-asset-label invariant, then writes
// the segment. Duration is derived from the range, never taken from input.
func (s *Service) Create(ctx context.Context, assetID, ownerID int64, req CreateSegmentRequest) (*Segment, error) {
	a, err := s.assets.Get(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	if !a.IsAudio() {
		return nil, ErrNotAudioAsset
	}

	start := round3(*req.StartTime)
	end := round3(*req.EndTime)
	if start >= end {
		return nil, ErrInvalidRange
	}

	// The schema has no compound FK tying label_id to asset_id, so the
	// cross-reference is enforced here.
	if err := s.checkLabel(ctx, req.LabelID, assetID); err != nil {
		return nil, err
	}

	now := time.Now()
	seg := &Segment{
		AssetID:   assetID,
		LabelID:   req.LabelID,
		StartTime: start,
		EndTime:   end,
		Duration:  round3(end - start),
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, seg); err != nil {
		return nil, err
	}
	return seg, nil
}

// Update re-validates the range and label invariants for whatever changed
// and recomputes duration.
func (s *Service) Update(ctx context.Context, segmentID, ownerID int64, req UpdateSegmentRequest) (*Segment, error) {
	seg, err := s.getOwned(ctx, segmentID, ownerID)
	if err != nil {
		return nil, err
	}

	start := seg.StartTime
	end := seg.EndTime
	if req.StartTime != nil {
		start = round3(*req.StartTime)
	}
	if req.EndTime != nil {
		end = round3(*req.EndTime)
	}
	if start >= end {
		return nil, ErrInvalidRange
	}
	if req.LabelID != nil {
		if err := s.checkLabel(ctx, *req.LabelID, seg.AssetID); err != nil {
			return nil, err
		}
		seg.LabelID = *req.LabelID
	}
	if req.Notes != nil {
		seg.Notes = *req.Notes
	}

	seg.StartTime = start
	seg.EndTime = end
	seg.Duration = round3(end - start)
	seg.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, seg); err != nil {
		return nil, err
	}
	return seg, nil
}

// List returns the asset's segments ascending by start_time, annotated with
// label name and color. labelID narrows to a single label when set.
func (s *Service) List(ctx context.Context, assetID, ownerID int64, labelID *int64) ([]Row, error) {
	if _, err := s.assets.Get(ctx, assetID, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListByAsset(ctx, assetID, labelID)
}

// Delete removes a single segment. Segments are leaf entities; nothing
// cascades from them.
func (s *Service) Delete(ctx context.Context, segmentID, ownerID int64) error {
	if _, err := s.getOwned(ctx, segmentID, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, segmentID)
}

func (s *Service) getOwned(ctx context.Context, segmentID, ownerID int64) (*Segment, error) {
	seg, err := s.repo.GetByID(ctx, segmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.assets.Get(ctx, seg.AssetID, ownerID); err != nil {
		return nil, err
	}
	return seg, nil
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

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
