package label

import (
	"context"

	"medialabel/internal/domain/asset"
)

// AssetGetter resolves an asset and verifies the caller owns it. Satisfied by
// the asset service.
type AssetGetter interface {
	Get(ctx context.Context, id, ownerID int64) (*asset.Asset, error)
}
