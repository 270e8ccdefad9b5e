package domain

import "time"

type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyInactive PropertyStatus = "inactive"
)

// Property is a rental listing managed through the admin dashboard.
// Images holds the featured display images; the order of the slice is
// the display order. Full photo sets live in GalleryImage.
type Property struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" validate:"required"`
	Nickname    string         `json:"nickname,omitempty"`
	Description string         `json:"description" gorm:"type:text"`
	Address     string         `json:"address" validate:"required"`
	RefNo       string         `json:"refNo"`
	Longitude   float64        `json:"longitude"`
	Latitude    float64        `json:"latitude"`
	Price       float64        `json:"price" validate:"gte=0"`
	CleaningFee string         `json:"cleaning_fee,omitempty"`
	Pets        string         `json:"pets,omitempty"`
	PetsFee     string         `json:"pets_fee,omitempty"`
	Features    []string       `json:"features" gorm:"serializer:json"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	Bedrooms    string         `json:"bedrooms"`
	Bathrooms   string         `json:"bathrooms"`
	Guests      string         `json:"guests"`
	Status      PropertyStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
