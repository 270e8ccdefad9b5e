package client

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates an account and stores the returned token before
// returning, so the client is immediately authenticated.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and stores the returned token before returning.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Logout clears the stored token. No network call is made.
func (c *Client) Logout() {
	c.ClearToken()
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/admin/request-password-reset", body, nil)
}

func (c *Client) VerifyResetCode(ctx context.Context, email, code string) (bool, error) {
	body := map[string]string{"email": email, "code": code}
	var out struct {
		Verified bool `json:"verified"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/admin/verify-reset-code", body, &out); err != nil {
		return false, err
	}
	return out.Verified, nil
}

func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{"email": email, "code": code, "newPassword": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/admin/reset-password", body, nil)
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/admin/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/admin/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.doJSON(ctx, http.MethodPut, "/auth/admin/change-password", body, nil)
}

// UploadAvatar sends the avatar file and returns its public URL.
func (c *Client) UploadAvatar(ctx context.Context, avatar Upload) (string, error) {
	var out struct {
		Avatar string `json:"avatar"`
	}
	err := c.doMultipart(ctx, http.MethodPost, "/auth/admin/avatar", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("avatar", avatar.Name)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, avatar.Reader)
		return err
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Avatar, nil
}
