package export

import "context"

// Service coordinates export: consistent snapshot plus the labeled ->
// exported lifecycle move, both inside the repository transaction.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Export(ctx context.Context, assetID, ownerID int64) (*Artifact, error) {
	return s.repo.ExportSnapshot(ctx, assetID, ownerID)
}
