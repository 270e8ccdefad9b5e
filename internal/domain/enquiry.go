package domain

import "time"

type EnquiryStatus string

const (
	EnquiryPending   EnquiryStatus = "PENDING"
	EnquiryConfirmed EnquiryStatus = "CONFIRMED"
	EnquiryCancelled EnquiryStatus = "CANCELLED"
)

// EnquiryBooking is a stay request submitted from the public site.
// Arrival and departure dates are stored verbatim as the visitor sent
// them, either ISO datetime or plain YYYY-MM-DD.
type EnquiryBooking struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	PropertyID    string        `json:"propertyId" gorm:"index"`
	FirstName     string        `json:"firstName" validate:"required"`
	LastName      string        `json:"lastName,omitempty"`
	Email         string        `json:"email" validate:"required,email"`
	Mobile        string        `json:"mobile"`
	ArrivalDate   string        `json:"arrivalDate" validate:"required"`
	DepartureDate string        `json:"departureDate" validate:"required"`
	Adults        int           `json:"adults,omitempty"`
	Children      int           `json:"children,omitempty"`
	Message       string        `json:"message,omitempty" gorm:"type:text"`
	Status        EnquiryStatus `json:"status" gorm:"index"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

func (EnquiryBooking) TableName() string { return "enquiry_bookings" }
