package segment

import "errors"

var (
	ErrSegmentNotFound = errors.New("segment not found")
	ErrInvalidRange    = errors.New("start_time must be strictly before end_time")
	ErrLabelMismatch   = errors.New("label does not belong to this asset")
	ErrNotAudioAsset   = errors.New("segments can only be created on audio assets")
	ErrValidation      = errors.New("validation error")
)
