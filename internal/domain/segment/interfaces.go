package segment

import (
	"context"

	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/label"
)

// AssetGetter resolves an asset and verifies the caller owns it.
type AssetGetter interface {
	Get(ctx context.Context, id, ownerID int64) (*asset.Asset, error)
}

// LabelGetter resolves a label so the same-asset invariant can be checked.
type LabelGetter interface {
	GetByID(ctx context.Context, id int64) (*label.Label, error)
}
