package client

import (
	"context"
	"net/http"
)

type CreateVisitorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

type UpdateVisitorRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Mobile   *string `json:"mobile,omitempty"`
	Verified *bool   `json:"verified,omitempty"`
}

func (c *Client) ListVisitors(ctx context.Context) ([]Visitor, error) {
	var out []Visitor
	if err := c.doJSON(ctx, http.MethodGet, "/visitors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVisitor(ctx context.Context, id string) (*Visitor, error) {
	var out Visitor
	if err := c.doJSON(ctx, http.MethodGet, "/visitors/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVisitor(ctx context.Context, req CreateVisitorRequest) (*Visitor, error) {
	var out Visitor
	if err := c.doJSON(ctx, http.MethodPost, "/visitors/admin", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVisitor(ctx context.Context, id string, req UpdateVisitorRequest) (*Visitor, error) {
	var out Visitor
	if err := c.doJSON(ctx, http.MethodPut, "/visitors/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVisitor(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/visitors/"+id, nil, nil)
}
