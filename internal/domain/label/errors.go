package label

import "errors"

var (
	ErrLabelNotFound = errors.New("label not found")
	ErrDuplicateName = errors.New("label name already exists for this asset")
	ErrInvalidColor  = errors.New("color must be #RRGGBB")
	ErrValidation    = errors.New("validation error")
)
