package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client configuration constants.
const (
	// defaultTimeout bounds every request to the hub.
	defaultTimeout = 10 * time.Second
)

// Client talks to the Home Center REST API.
//
// Thread Safety: all methods are safe for concurrent use.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

// Config holds hub connection settings.
type Config struct {
	// URL is the hub base URL (e.g. "http://192.168.1.10").
	URL string

	// Username and Password authenticate against the hub (basic auth).
	Username string
	Password string

	// Timeout bounds each request. Zero means the default.
	Timeout time.Duration
}

// NewClient creates a hub client.
//
// Parameters:
//   - cfg: Hub connection settings; URL is required
//
// Returns:
//   - *Client: Ready for use
//   - error: If the URL is empty or unparseable
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("hub url is required")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("parsing hub url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// GetDevices fetches every device known to the hub.
func (c *Client) GetDevices(ctx context.Context) ([]Device, error) {
	var devices []Device
	if err := c.getJSON(ctx, "/api/devices", &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// GetDevice fetches a single device by id.
func (c *Client) GetDevice(ctx context.Context, id int) (*Device, error) {
	var device Device
	if err := c.getJSON(ctx, "/api/devices/"+strconv.Itoa(id), &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// GetClimateZone fetches one climate zone's state.
//
// The temperature and mode converters call this for services flagged as
// climate zones; failures are caught and logged at the conversion layer.
func (c *Client) GetClimateZone(ctx context.Context, id int) (*ClimateZone, error) {
	var zone ClimateZone
	if err := c.getJSON(ctx, "/api/panels/climate/"+strconv.Itoa(id), &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// GetHeatingZone fetches one heating zone's state.
func (c *Client) GetHeatingZone(ctx context.Context, id int) (*HeatingZone, error) {
	var zone HeatingZone
	if err := c.getJSON(ctx, "/api/panels/heating/"+strconv.Itoa(id), &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %w", ErrRequestFailed, err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: GET %s: %d", ErrBadStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrDecodeFailed, path, err)
	}
	return nil
}
