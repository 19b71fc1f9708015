package region

import "time"

// Region is a rectangular annotation on an image asset, top-left origin,
// stored as fixed-point pixels with 2 decimal digits.
type Region struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AssetID   int64     `json:"asset_id" gorm:"index;not null"`
	LabelID   int64     `json:"label_id" gorm:"index;not null"`
	X         float64   `json:"x" gorm:"type:decimal(10,2);not null"`
	Y         float64   `json:"y" gorm:"type:decimal(10,2);not null"`
	Width     float64   `json:"width" gorm:"type:decimal(10,2);not null"`
	Height    float64   `json:"height" gorm:"type:decimal(10,2);not null"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Region) TableName() string { return "regions" }

// Row is a region joined with its label's name and color for overlay
// rendering.
type Row struct {
	Region
	LabelName  string `json:"label_name"`
	LabelColor string `json:"label_color"`
	// OutOfBounds is a soft warning: the box extends past the image's
	// stored dimensions. Never a hard error.
	OutOfBounds bool `json:"out_of_bounds,omitempty" gorm:"-"`
}
