package region

import "errors"

var (
	ErrRegionNotFound    = errors.New("region not found")
	ErrInvalidDimensions = errors.New("width and height must be positive")
	ErrNegativeOrigin    = errors.New("x and y must not be negative")
	ErrLabelMismatch     = errors.New("label does not belong to this asset")
	ErrNotImageAsset     = errors.New("regions can only be created on image assets")
)
