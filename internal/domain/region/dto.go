package region

type CreateRegionRequest struct {
	LabelID int64    `json:"label_id" validate:"required"`
	X       *float64 `json:"x" validate:"required"`
	Y       *float64 `json:"y" validate:"required"`
	Width   *float64 `json:"width" validate:"required"`
	Height  *float64 `json:"height" validate:"required"`
	Notes   string   `json:"notes" validate:"max=2000"`
}

type UpdateRegionRequest struct {
	LabelID *int64   `json:"label_id"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
	Notes   *string  `json:"notes" validate:"omitempty,max=2000"`
}
