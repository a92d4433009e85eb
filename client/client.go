// Package client talks to the hotel-management REST backend. Every entity
// collection is exposed as a Resource with list/get/create/update/delete
// operations; list responses decode into hotelpager.Page envelopes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Alp4ka/hotelpager/model"
)

const (
	DefaultTimeout  = 15 * time.Second
	requestIDHeader = "X-Request-Id"
)

// Client is a backend connection. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	logger  zerolog.Logger

	Bookings      *Resource[model.Booking]
	Rooms         *Resource[model.Room]
	Employees     *Resource[model.Employee]
	Inventory     *Resource[model.InventoryItem]
	Assets        *Resource[model.Asset]
	Maintenance   *Resource[model.MaintenanceSchedule]
	WorkSchedules *Resource[model.WorkSchedule]
}

type Option func(c *Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds every request, including reading the response.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the backend rooted at baseURL,
// e.g. "https://hotel.example/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url '%s': %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url '%s': scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Bookings = Collection[model.Booking](c, model.Bookings.Name)
	c.Rooms = Collection[model.Room](c, model.Rooms.Name)
	c.Employees = Collection[model.Employee](c, model.Employees.Name)
	c.Inventory = Collection[model.InventoryItem](c, model.Inventory.Name)
	c.Assets = Collection[model.Asset](c, model.Assets.Name)
	c.Maintenance = Collection[model.MaintenanceSchedule](c, model.Maintenance.Name)
	c.WorkSchedules = Collection[model.WorkSchedule](c, model.WorkSchedules.Name)

	return c, nil
}

// do sends one request. body, when not nil, is encoded as JSON; a successful
// response is decoded into out unless out is nil or the response is empty.
func (c *Client) do(ctx context.Context, method string, path []string, query url.Values, body, out any) error {
	endpoint := c.baseURL.JoinPath(path...)
	endpoint.RawQuery = query.Encode()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), payload)
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("url", endpoint.String()).Str("request_id", requestID).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, endpoint.Path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("url", endpoint.String()).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(started)).
		Msg("backend request")

	if resp.StatusCode >= http.StatusBadRequest {
		return parseAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("cannot decode %s %s response: %w", method, endpoint.Path, err)
	}

	return nil
}

func idSegment(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
