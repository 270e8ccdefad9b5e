package client

import (
	"io"
	"time"
)

// Upload is one file payload for a multipart request.
type Upload struct {
	Name   string
	Reader io.Reader
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Property struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Nickname    string    `json:"nickname,omitempty"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	RefNo       string    `json:"refNo"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Price       float64   `json:"price"`
	CleaningFee string    `json:"cleaning_fee,omitempty"`
	Pets        string    `json:"pets,omitempty"`
	PetsFee     string    `json:"pets_fee,omitempty"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	Bedrooms    string    `json:"bedrooms"`
	Bathrooms   string    `json:"bathrooms"`
	Guests      string    `json:"guests"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type GalleryImage struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	URL        string    `json:"url"`
	Tag        string    `json:"tag"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Comment struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	VisitorID  string    `json:"visitorId"`
	Content    string    `json:"content"`
	Rating     *int      `json:"rating,omitempty"`
	Status     string    `json:"status"`
	Reply      *string   `json:"reply,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Visitor  *Visitor  `json:"visitor,omitempty"`
	Property *Property `json:"property,omitempty"`
}

type EnquiryBooking struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"propertyId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName,omitempty"`
	Email         string    `json:"email"`
	Mobile        string    `json:"mobile"`
	ArrivalDate   string    `json:"arrivalDate"`
	DepartureDate string    `json:"departureDate"`
	Adults        int       `json:"adults,omitempty"`
	Children      int       `json:"children,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Property *Property `json:"property,omitempty"`
}

type Visitor struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Mobile     string     `json:"mobile,omitempty"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthResponse is the login and register payload.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
