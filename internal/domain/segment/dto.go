package segment

type CreateSegmentRequest struct {
	LabelID   int64    `json:"label_id" validate:"required"`
	StartTime *float64 `json:"start_time" validate:"required,gte=0"`
	EndTime   *float64 `json:"end_time" validate:"required,gte=0"`
	Notes     string   `json:"notes" validate:"max=2000"`
}

type UpdateSegmentRequest struct {
	LabelID   *int64   `json:"label_id"`
	StartTime *float64 `json:"start_time" validate:"omitempty,gte=0"`
	EndTime   *float64 `json:"end_time" validate:"omitempty,gte=0"`
	Notes     *string  `json:"notes" validate:"omitempty,max=2000"`
}
