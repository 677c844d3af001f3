// Package gateway is the HTTP client for the events API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
)

// APIError is a non-2xx answer from the API. Error returns the server's
// message unchanged so it can be shown to the user as is.
type APIError struct {
	Status     int
	Code       string
	Message    string
	Violations []string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL, token string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	var resp []eventBody
	if err := c.do(ctx, http.MethodGet, "/events", nil, &resp); err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(resp))
	for _, e := range resp {
		events = append(events, e.event())
	}
	return events, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.SportCategory, error) {
	var resp []namedBody
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SportCategory, 0, len(resp))
	for _, item := range resp {
		out = append(out, domain.SportCategory{ID: item.ID, Name: item.Name})
	}
	return out, nil
}

func (c *Client) ListCities(ctx context.Context) ([]domain.City, error) {
	var resp []namedBody
	if err := c.do(ctx, http.MethodGet, "/cities", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.City, 0, len(resp))
	for _, item := range resp {
		out = append(out, domain.City{ID: item.ID, Name: item.Name})
	}
	return out, nil
}

func (c *Client) ListAreas(ctx context.Context) ([]domain.Area, error) {
	var resp []areaBody
	if err := c.do(ctx, http.MethodGet, "/areas", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Area, 0, len(resp))
	for _, a := range resp {
		out = append(out, domain.Area{ID: a.ID, Name: a.Name, CityID: a.CityID})
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, p domain.EventPayload) (domain.Event, error) {
	var resp eventBody
	if err := c.do(ctx, http.MethodPost, "/events", newPayloadBody(p), &resp); err != nil {
		return domain.Event{}, err
	}
	return resp.event(), nil
}

// UpdateEvent rewrites event id. ownerID scopes the write to the organizer.
func (c *Client) UpdateEvent(ctx context.Context, id, ownerID string, p domain.EventPayload) error {
	path := "/events/" + url.PathEscape(id)
	if ownerID != "" {
		path += "?organizer_id=" + url.QueryEscape(ownerID)
	}
	return c.do(ctx, http.MethodPut, path, newPayloadBody(p), nil)
}

// SetEventActive toggles visibility. Only retiring is exposed by the API.
func (c *Client) SetEventActive(ctx context.Context, id string, active bool) error {
	if active {
		return &APIError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: "reactivating events is not supported"}
	}
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	var body struct {
		Error      string   `json:"error"`
		Code       string   `json:"code"`
		Violations []string `json:"violations"`
	}
	apiErr := &APIError{Status: res.StatusCode}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		apiErr.Violations = body.Violations
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(res.StatusCode)
	}
	return apiErr
}

// Profile returns the caller's stored profile, including the role the API
// authorizes against.
func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	var resp profileBody
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		ID:        resp.ID,
		FullName:  resp.FullName,
		Phone:     resp.Phone,
		Location:  resp.Location,
		Bio:       resp.Bio,
		Role:      domain.Role(resp.Role),
		CreatedAt: resp.CreatedAt,
	}, nil
}
