// Package googlemaps geocodes places and maps coordinates to time zones with
// the Google Maps Geocoding and Time Zone APIs.
package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

// DefaultBaseURL is the Google Maps API endpoint.
const DefaultBaseURL = "https://maps.googleapis.com"

var (
	// ErrNoAPIKey is returned by every call when no key is configured.
	ErrNoAPIKey = errors.New("google maps API key not configured")
	// ErrNoResults is returned when the API finds nothing.
	ErrNoResults = errors.New("no results")
	// ErrImprecise is returned for country-level approximate results, which
	// span too many zones to be useful.
	ErrImprecise = errors.New("location too imprecise")
)

// HTTPClient interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client handles Google Maps API operations.
type Client struct {
	httpClient HTTPClient
	logger     *slog.Logger
	apiKey     string
	baseURL    string
	attempts   uint
	delay      time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport, for example an httpcache.Client.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBaseURL points the client at another endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAttempts sets how many times a request is tried when the API answers
// with a server error. The default is a single attempt.
func WithAttempts(n uint) Option {
	return func(c *Client) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithRetryDelay sets the base backoff between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.delay = d
	}
}

// NewClient creates a new Google Maps API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
		baseURL:    DefaultBaseURL,
		attempts:   1,
		delay:      time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Geocode converts a place to coordinates using the Geocoding API.
func (c *Client) Geocode(ctx context.Context, place geo.Place) (geo.Coordinates, error) {
	if c.apiKey == "" {
		return geo.Coordinates{}, ErrNoAPIKey
	}
	address := place.String()

	var result struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
		Results      []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
				LocationType string `json:"location_type"`
			} `json:"geometry"`
			Types            []string `json:"types"`
			FormattedAddress string   `json:"formatted_address"`
		} `json:"results"`
	}

	if err := c.get(ctx, "/maps/api/geocode/json", url.Values{"address": {address}}, &result); err != nil {
		return geo.Coordinates{}, err
	}

	if result.Status == "ZERO_RESULTS" || (result.Status == "OK" && len(result.Results) == 0) {
		return geo.Coordinates{}, fmt.Errorf("geocoding %q: %w", address, ErrNoResults)
	}
	if result.Status != "OK" {
		return geo.Coordinates{}, apiError("geocoding", result.Status, result.ErrorMessage)
	}

	first := result.Results[0]
	if strings.EqualFold(first.Geometry.LocationType, "approximate") && countryLevel(first.Types) {
		c.logger.Debug("rejecting imprecise geocoding result", "address", address,
			"formatted_address", first.FormattedAddress, "types", first.Types)
		return geo.Coordinates{}, fmt.Errorf("geocoding %q: %w", address, ErrImprecise)
	}

	coords := geo.Coordinates{
		Latitude:  first.Geometry.Location.Lat,
		Longitude: first.Geometry.Location.Lng,
	}
	c.logger.Debug("geocoded", "address", address, "formatted_address", first.FormattedAddress, "coordinates", coords.String())
	return coords, nil
}

func countryLevel(types []string) bool {
	hasCountry, hasPrecise := false, false
	for _, t := range types {
		switch t {
		case "country":
			hasCountry = true
		case "locality", "administrative_area_level_1", "administrative_area_level_2":
			hasPrecise = true
		}
	}
	return hasCountry && !hasPrecise
}

// tzTimestamp pins Time Zone API requests to one instant; the zone id does
// not depend on it and a constant keeps responses cacheable.
const tzTimestamp = "1609459200"

// ZoneAt returns the IANA zone at coordinates using the Time Zone API.
func (c *Client) ZoneAt(ctx context.Context, coords geo.Coordinates) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	var result struct {
		TimeZoneID   string `json:"timeZoneId"`
		TimeZoneName string `json:"timeZoneName"`
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
	}

	params := url.Values{
		"location":  {strconv.FormatFloat(coords.Latitude, 'f', 6, 64) + "," + strconv.FormatFloat(coords.Longitude, 'f', 6, 64)},
		"timestamp": {tzTimestamp},
	}
	if err := c.get(ctx, "/maps/api/timezone/json", params, &result); err != nil {
		return "", err
	}

	switch result.Status {
	case "OK":
		if result.TimeZoneID == "" {
			return "", fmt.Errorf("time zone at %s: %w", coords, ErrNoResults)
		}
		return result.TimeZoneID, nil
	case "ZERO_RESULTS":
		return "", fmt.Errorf("time zone at %s: %w", coords, ErrNoResults)
	default:
		return "", apiError("timezone", result.Status, result.ErrorMessage)
	}
}

// Cacheable reports whether a Maps response is a definitive answer worth
// caching. Quota and transient failures arrive as HTTP 200 with an error
// status in the body, so only OK and ZERO_RESULTS bodies qualify.
func Cacheable(status int, body []byte) bool {
	if status != http.StatusOK {
		return false
	}
	var envelope struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	return envelope.Status == "OK" || envelope.Status == "ZERO_RESULTS"
}

func apiError(api, status, message string) error {
	if message != "" {
		return fmt.Errorf("%s API failed with status %s: %s", api, status, message)
	}
	return fmt.Errorf("%s API failed with status %s", api, status)
}

// get performs a GET and decodes the JSON body into out. Server errors are
// retried up to the configured attempts; everything else fails at once.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	u := c.baseURL + path + "?" + params.Encode()

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				if err := resp.Body.Close(); err != nil {
					c.logger.Debug("failed to close response body", "error", err)
				}
			}()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("maps API %s: server error %d", path, resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("maps API %s: unexpected status %d", path, resp.StatusCode))
			}
			body = data
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Info("retrying maps API request", "path", path, "attempt", n+1, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		preview := body
		if len(preview) > 200 {
			preview = preview[:200]
		}
		c.logger.Debug("maps API JSON parse error", "path", path, "error", err, "body_preview", string(preview))
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}
