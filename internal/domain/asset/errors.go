package asset

import "errors"

var (
	ErrAssetNotFound       = errors.New("asset not found")
	ErrNotOwner            = errors.New("you do not own this asset")
	ErrInvalidTransition   = errors.New("lifecycle transition not permitted")
	ErrDuplicateStoredName = errors.New("stored filename already exists")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType     = errors.New("file type is not allowed")
	ErrValidation          = errors.New("validation error")
)
