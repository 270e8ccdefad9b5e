package domain

import "time"

type GalleryTag string

const (
	TagExterior     GalleryTag = "exterior"
	TagInterior     GalleryTag = "interior"
	TagSurroundings GalleryTag = "surroundings"
)

func (t GalleryTag) Valid() bool {
	switch t {
	case TagExterior, TagInterior, TagSurroundings:
		return true
	}
	return false
}

// GalleryImage belongs to exactly one property. Retagging never moves
// an image between properties.
type GalleryImage struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	PropertyID string     `json:"propertyId" gorm:"index"`
	URL        string     `json:"url"`
	Tag        GalleryTag `json:"tag"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (GalleryImage) TableName() string { return "property_gallery_images" }
