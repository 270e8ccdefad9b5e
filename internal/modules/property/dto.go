package property

import "mime/multipart"

// Form carries the multipart fields of a create or update request.
// Features arrive as repeated features[] fields; blank entries are
// filtered before validation.
type Form struct {
	Name        string  `validate:"required"`
	Nickname    string
	Description string
	Address     string `validate:"required"`
	RefNo       string
	Price       float64 `validate:"gte=0"`
	Longitude   float64
	Latitude    float64
	CleaningFee string
	Pets        string
	PetsFee     string
	Bedrooms    string
	Bathrooms   string
	Guests      string
	Status      string `validate:"omitempty,oneof=active inactive"`
	Features    []string
	Images      []*multipart.FileHeader
}

type RemoveFeaturedRequest struct {
	URL string `json:"url" binding:"required"`
}
