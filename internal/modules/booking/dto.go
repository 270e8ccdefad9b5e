package booking

type CreateEnquiryRequest struct {
	PropertyID    string `json:"propertyId" binding:"required"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" binding:"required,email"`
	Mobile        string `json:"mobile"`
	ArrivalDate   string `json:"arrivalDate" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Message       string `json:"message"`
}

// UpdateEnquiryRequest is a partial update; nil fields are untouched.
type UpdateEnquiryRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Mobile        *string `json:"mobile"`
	ArrivalDate   *string `json:"arrivalDate"`
	DepartureDate *string `json:"departureDate"`
	Adults        *int    `json:"adults"`
	Children      *int    `json:"children"`
	Message       *string `json:"message"`
	Status        *string `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}
