package export

import (
	"time"

	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/label"
	"medialabel/internal/domain/region"
	"medialabel/internal/domain/segment"
)

// Artifact is the consistent snapshot handed to callers: the asset, its full
// label vocabulary and every annotation, as of one point in time. Output
// formatting is the caller's concern; this is the complete raw state.
type Artifact struct {
	Asset       *asset.Asset   `json:"asset"`
	Labels      []*label.Label `json:"labels"`
	Segments    []segment.Row  `json:"segments"`
	Regions     []region.Row   `json:"regions"`
	GeneratedAt time.Time      `json:"generated_at"`
}
