package client

import (
	"context"
	"net/http"
	"net/url"
)

type EnquiryFilter struct {
	Status     string
	PropertyID string
}

type CreateEnquiryRequest struct {
	PropertyID    string `json:"propertyId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile,omitempty"`
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
	Adults        int    `json:"adults,omitempty"`
	Children      int    `json:"children,omitempty"`
	Message       string `json:"message,omitempty"`
}

// UpdateEnquiryRequest is a partial update; nil fields are untouched.
type UpdateEnquiryRequest struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty"`
	Mobile        *string `json:"mobile,omitempty"`
	ArrivalDate   *string `json:"arrivalDate,omitempty"`
	DepartureDate *string `json:"departureDate,omitempty"`
	Adults        *int    `json:"adults,omitempty"`
	Children      *int    `json:"children,omitempty"`
	Message       *string `json:"message,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (c *Client) ListEnquiryBookings(ctx context.Context, f EnquiryFilter) ([]EnquiryBooking, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.PropertyID != "" {
		q.Set("propertyId", f.PropertyID)
	}
	path := "/enquiry-bookings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []EnquiryBooking
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEnquiryBooking(ctx context.Context, id string) (*EnquiryBooking, error) {
	var out EnquiryBooking
	if err := c.doJSON(ctx, http.MethodGet, "/enquiry-bookings/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CountEnquiryBookings returns the number of PENDING enquiries, shown
// as the dashboard badge.
func (c *Client) CountEnquiryBookings(ctx context.Context) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/enquiry-bookings/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// CreateEnquiryBooking submits a public stay enquiry; it starts
// PENDING.
func (c *Client) CreateEnquiryBooking(ctx context.Context, req CreateEnquiryRequest) (*EnquiryBooking, error) {
	var out EnquiryBooking
	if err := c.doJSON(ctx, http.MethodPost, "/enquiry-bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEnquiryBooking(ctx context.Context, id string, req UpdateEnquiryRequest) (*EnquiryBooking, error) {
	var out EnquiryBooking
	if err := c.doJSON(ctx, http.MethodPut, "/enquiry-bookings/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ConfirmEnquiryBooking(ctx context.Context, id string) (*EnquiryBooking, error) {
	var out EnquiryBooking
	if err := c.doJSON(ctx, http.MethodPatch, "/enquiry-bookings/"+id+"/confirm", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelEnquiryBooking(ctx context.Context, id string) (*EnquiryBooking, error) {
	var out EnquiryBooking
	if err := c.doJSON(ctx, http.MethodPatch, "/enquiry-bookings/"+id+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEnquiryBooking(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/enquiry-bookings/"+id, nil, nil)
}
