package asset

// CreateAssetForm carries the multipart fields that accompany the uploaded
// file. Duration is for audio assets, width/height for images; the blob
// itself arrives as the "file" part.
type CreateAssetForm struct {
	Kind        string   `form:"kind" validate:"required,oneof=audio image"`
	Title       string   `form:"title" validate:"required,max=200"`
	Description string   `form:"description" validate:"max=2000"`
	Duration    *float64 `form:"duration" validate:"omitempty,gt=0"`
	Width       *int     `form:"width" validate:"omitempty,gt=0"`
	Height      *int     `form:"height" validate:"omitempty,gt=0"`
}

type UpdateMetadataRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}
