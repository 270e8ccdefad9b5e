// Package client is the Go SDK for the propertyhub REST API. One
// method per endpoint; success bodies decode into the typed structs in
// types.go and every failure is a *Error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	store   TokenStore

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.store = store }
}

// New builds a client for the API mounted at baseURL (for example
// "http://localhost:4000/api"). A token already present in the store
// is picked up so sessions survive reconstruction.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		store:   &memoryStore{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if token, err := c.store.Load(); err == nil && token != "" {
		c.token = token
	}
	return c
}

// SetToken stores the bearer token in memory and in the store.
// Subsequent requests send Authorization: Bearer <token>.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	_ = c.store.Save(token)
}

// ClearToken removes the token from memory and the store.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	_ = c.store.Clear()
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ImageURL resolves a stored image path against the server origin.
// Absolute URLs pass through unchanged; the origin is the base URL
// with its trailing /api removed.
func (c *Client) ImageURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	origin := strings.TrimSuffix(c.baseURL, "/api")
	return origin + path
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return validationErr(err.Error())
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return validationErr(err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.do(req, out)
}

// doMultipart builds the body with mime/multipart and takes the
// Content-Type from the writer so the boundary is always the writer's
// own. Only Authorization is attached beyond that.
func (c *Client) doMultipart(ctx context.Context, method, path string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return validationErr(err.Error())
	}
	if err := w.Close(); err != nil {
		return validationErr(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return validationErr(err.Error())
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(req)

	return c.do(req, out)
}

func (c *Client) authorize(req *http.Request) {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return networkErr(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkErr(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, body),
		}
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return &Error{
				Kind:    KindHTTP,
				Status:  resp.StatusCode,
				Message: err.Error(),
			}
		}
	}
	return nil
}

// errorMessage extracts the server's text from an error body, trying
// the error field first, then message, then the status fallback.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Err     string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Err != "" {
			return payload.Err
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}
