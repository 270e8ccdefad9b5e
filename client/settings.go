package client

import (
	"context"
	"net/http"
	"net/url"
)

type SettingInput struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type UpdateSettingRequest struct {
	Value       string `json:"value"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *Client) ListSettings(ctx context.Context, category string) ([]Setting, error) {
	path := "/settings"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var out []Setting
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSetting(ctx context.Context, key string) (*Setting, error) {
	var out Setting
	if err := c.doJSON(ctx, http.MethodGet, "/settings/"+key, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings bulk-upserts; settings are never deleted.
func (c *Client) UpdateSettings(ctx context.Context, settings []SettingInput) ([]Setting, error) {
	body := map[string]any{"settings": settings}

	var out []Setting
	if err := c.doJSON(ctx, http.MethodPut, "/settings", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateSetting(ctx context.Context, key string, req UpdateSettingRequest) (*Setting, error) {
	var out Setting
	if err := c.doJSON(ctx, http.MethodPut, "/settings/"+key, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
