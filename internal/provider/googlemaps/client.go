// Package googlemaps is a thin client for the Google Maps Directions and
// Places Autocomplete web services.
package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/helios-ride/service-routing/internal/domain/route"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"
	DefaultCountry = "in"
	DefaultTimeout = 10 * time.Second

	directionsPath   = "/maps/api/directions/json"
	autocompletePath = "/maps/api/place/autocomplete/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Config holds the client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Country string
	Timeout time.Duration
}

// StatusError is returned when the provider answers with a non-OK status.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "maps api status " + e.Status
	}
	return fmt.Sprintf("maps api status %s: %s", e.Status, e.Message)
}

// Client implements route.DirectionsProvider and route.PlacesProvider.
type Client struct {
	apiKey  string
	baseURL string
	country string
	http    *http.Client
	logger  *zap.Logger
}

var (
	_ route.DirectionsProvider = (*Client)(nil)
	_ route.PlacesProvider     = (*Client)(nil)
)

// NewClient validates cfg and builds a client with an instrumented transport.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("googlemaps: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("googlemaps: invalid base URL: %w", err)
	}
	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		country: cfg.Country,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}, nil
}

type directionsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Routes       []route.Route `json:"routes"`
}

// Directions returns the driving alternatives between origin and destination,
// with live-traffic durations for a departure now.
func (c *Client) Directions(ctx context.Context, origin, destination route.LatLng) ([]route.Route, error) {
	params := url.Values{}
	params.Set("origin", origin.String())
	params.Set("destination", destination.String())
	params.Set("alternatives", "true")
	params.Set("departure_time", "now")

	var resp directionsResponse
	if err := c.get(ctx, directionsPath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	c.logger.Debug("directions fetched",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
		zap.Int("routes", len(resp.Routes)),
	)
	return resp.Routes, nil
}

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

// Autocomplete returns place descriptions matching input, restricted to the
// configured country.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]string, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("components", "country:"+c.country)

	var resp autocompleteResponse
	if err := c.get(ctx, autocompletePath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	descriptions := make([]string, len(resp.Predictions))
	for i, p := range resp.Predictions {
		descriptions[i] = p.Description
	}
	return descriptions, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The URL carries the API key; report only the path.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("GET %s: %w", path, urlErr.Err)
		}
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: malformed response: %w", path, err)
	}
	return nil
}

func checkStatus(status, message string) error {
	if status == statusOK || status == statusZeroResults {
		return nil
	}
	return &StatusError{Status: status, Message: message}
}
