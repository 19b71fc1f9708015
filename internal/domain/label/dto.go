package label

type CreateLabelRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Color       string `json:"color" validate:"required"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateLabelRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Color       *string `json:"color"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}
