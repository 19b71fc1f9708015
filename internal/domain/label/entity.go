package label

import "time"

// Label is a named, colored category owned by exactly one asset. Annotations
// reference a label by ID but never share labels across assets.
type Label struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AssetID     int64     `json:"asset_id" gorm:"uniqueIndex:idx_labels_asset_name;not null"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_labels_asset_name;size:100;not null"`
	Color       string    `json:"color" gorm:"size:7;not null"` // #RRGGBB
	Description string    `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Label) TableName() string { return "labels" }
