// Package client is a typed HTTP client for the PrimeSpace API, used by the
// CLI front-end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"primespace/internal/api"
	"primespace/internal/model"
)

// FeaturedCount is how many available listings the home view shows.
const FeaturedCount = 3

// ListFilter narrows ListProperties; zero values mean no constraint.
type ListFilter struct {
	Type     string
	Status   string
	Location string
}

type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
}

// New builds a client for the API at baseURL. session may be nil for
// anonymous use.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

// Session returns the current login state, nil when anonymous.
func (c *Client) Session() *Session {
	return c.session
}

// Logout drops the in-memory session. The persisted file is the caller's
// concern.
func (c *Client) Logout() {
	c.session = nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Login exchanges credentials for a session and keeps it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var res api.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		api.LoginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	c.session = &Session{
		ID:       res.ID,
		Username: res.Username,
		Email:    res.Email,
		Role:     res.Role,
		Token:    res.Token,
	}
	return c.session, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, username, email, password string) (*api.UserResponse, error) {
	var res api.UserResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil,
		api.RegisterRequest{Username: username, Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListProperties fetches the catalog, newest first.
func (c *Client) ListProperties(ctx context.Context, f ListFilter) ([]model.Property, error) {
	query := url.Values{}
	if f.Type != "" {
		query.Set("type", f.Type)
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.Location != "" {
		query.Set("location", f.Location)
	}
	var properties []model.Property
	if err := c.do(ctx, http.MethodGet, "/api/properties", query, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// FeaturedProperties returns the first few available listings for the home
// view.
func (c *Client) FeaturedProperties(ctx context.Context) ([]model.Property, error) {
	properties, err := c.ListProperties(ctx, ListFilter{Status: model.StatusAvailable})
	if err != nil {
		return nil, err
	}
	if len(properties) > FeaturedCount {
		properties = properties[:FeaturedCount]
	}
	return properties, nil
}

func (c *Client) GetProperty(ctx context.Context, id int) (*model.Property, error) {
	var p model.Property
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/properties/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProperty(ctx context.Context, req api.CreatePropertyRequest) (*model.Property, error) {
	var p model.Property
	if err := c.do(ctx, http.MethodPost, "/api/properties", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id int, req api.UpdatePropertyRequest) (*model.Property, error) {
	var p model.Property
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/properties/%d", id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProperty removes a listing and returns the server's confirmation.
func (c *Client) DeleteProperty(ctx context.Context, id int) (string, error) {
	var res api.MessageResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/properties/%d", id), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
