package client

import (
	"context"
	"net/http"
	"net/url"
)

type CommentFilter struct {
	Status     string
	PropertyID string
}

type CreateCommentRequest struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile,omitempty"`
	Content    string `json:"content"`
	Rating     *int   `json:"rating,omitempty"`
}

func (c *Client) ListComments(ctx context.Context, f CommentFilter) ([]Comment, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.PropertyID != "" {
		q.Set("propertyId", f.PropertyID)
	}
	path := "/comments"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Comment
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment submits a visitor review; it starts PENDING until
// moderated.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	var out Comment
	if err := c.doJSON(ctx, http.MethodPost, "/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveComment(ctx context.Context, id string) (*Comment, error) {
	var out Comment
	if err := c.doJSON(ctx, http.MethodPatch, "/comments/"+id+"/approve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectComment(ctx context.Context, id string) (*Comment, error) {
	var out Comment
	if err := c.doJSON(ctx, http.MethodPatch, "/comments/"+id+"/reject", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReplyToComment(ctx context.Context, id, reply string) (*Comment, error) {
	var out Comment
	body := map[string]string{"reply": reply}
	if err := c.doJSON(ctx, http.MethodPost, "/comments/"+id+"/reply", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/comments/"+id, nil, nil)
}
