package asset

import (
	"time"

	"gorm.io/gorm"
)

// Kind separates the two annotation surfaces: segments attach to audio
// assets, regions to image assets.
type Kind string

const (
	KindAudio Kind = "audio"
	KindImage Kind = "image"
)

// Status is the asset lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusLabeled  Status = "labeled"
	StatusExported Status = "exported"
)

// transitions is the reviewed lifecycle table. Anything not listed here is
// rejected, including re-marking an already labeled asset.
var transitions = map[Status][]Status{
	StatusDraft:    {StatusLabeled},
	StatusLabeled:  {StatusExported},
	StatusExported: {},
}

// CanTransition reports whether from -> to is a permitted lifecycle move.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Asset is an uploaded audio or image file under annotation. The blob lives
// in FileStorage; this row carries its metadata and lifecycle state.
type Asset struct {
	ID           int64          `json:"id" gorm:"primaryKey"`
	OwnerID      int64          `json:"owner_id" gorm:"index;not null"`
	Kind         Kind           `json:"kind" gorm:"type:varchar(10);not null"`
	OriginalName string         `json:"original_name"`
	StoredName   string         `json:"stored_name" gorm:"uniqueIndex;size:191;not null"`
	FilePath     string         `json:"-"`
	FileURL      string         `json:"url"`
	MimeType     string         `json:"mime_type"`
	Size         int64          `json:"size"`
	Duration     *float64       `json:"duration,omitempty"` // seconds, audio only
	Width        *int           `json:"width,omitempty"`    // pixels, image only
	Height       *int           `json:"height,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty" gorm:"serializer:json"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	Status       Status         `json:"status" gorm:"type:varchar(16);default:'draft';index"`
	UploadedAt   time.Time      `json:"uploaded_at"`
	LabeledAt    *time.Time     `json:"labeled_at,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Asset) TableName() string { return "assets" }

func (a *Asset) IsAudio() bool { return a.Kind == KindAudio }
func (a *Asset) IsImage() bool { return a.Kind == KindImage }
