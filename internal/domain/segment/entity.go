package segment

import "time"

// Segment is a time-range annotation on an audio asset. Times are stored as
// fixed-point seconds with 3 decimal digits; Duration is always recomputed
// from the range and never accepted from callers.
type Segment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AssetID   int64     `json:"asset_id" gorm:"index;not null"`
	LabelID   int64     `json:"label_id" gorm:"index;not null"`
	StartTime float64   `json:"start_time" gorm:"type:decimal(10,3);not null"`
	EndTime   float64   `json:"end_time" gorm:"type:decimal(10,3);not null"`
	Duration  float64   `json:"duration" gorm:"type:decimal(10,3);not null"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Segment) TableName() string { return "segments" }

// Row is a segment joined with its label's name and color, the shape
// timeline rendering consumes.
type Row struct {
	Segment
	LabelName  string `json:"label_name"`
	LabelColor string `json:"label_color"`
}
