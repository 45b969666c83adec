// Package geocode wraps the commercial geocoding capability (Google
// Geocoding API wire shape). The client is constructed once with its
// credential; an empty key yields an unconfigured client.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// requestsPerSecond bounds outbound calls to the geocoder.
const requestsPerSecond = 10

// Client geocodes free-form address text.
type Client interface {
	Geocode(ctx context.Context, address string) (*Result, error)
	Configured() bool
}

// Result is one geocoder hit with its extracted components. Matched is false
// when the service answered but found nothing.
type Result struct {
	Street           string
	City             string
	Province         string
	Country          string
	ZipCode          string
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Matched          bool
}

// geocodeResponse is the JSON envelope returned by the API.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []component `json:"address_components"`
		FormattedAddress  string      `json:"formatted_address"`
		Geometry          struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type component struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a geocoding client. An empty apiKey yields an
// unconfigured client whose Geocode always fails fast.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Configured() bool { return c.apiKey != "" }

func (c *httpClient) Geocode(ctx context.Context, address string) (*Result, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("geocode: api key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocode: rate limit: %w", err)
	}

	params := url.Values{
		"address": {address},
		"region":  {"ph"},
		"key":     {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("geocode: read body: %w", err)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("geocode: parse response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return &Result{Matched: false}, nil
	}

	best := decoded.Results[0]
	result := extractComponents(best.AddressComponents)
	result.Latitude = best.Geometry.Location.Lat
	result.Longitude = best.Geometry.Location.Lng
	result.FormattedAddress = best.FormattedAddress
	result.Matched = true
	return result, nil
}

// extractComponents maps geocoder component types onto address fields.
// The first component of each handled type wins; unhandled types are ignored.
func extractComponents(components []component) *Result {
	r := &Result{}

	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "route":
				if r.Street == "" {
					r.Street = c.LongName
				}
			case "locality":
				if r.City == "" {
					r.City = c.LongName
				}
			case "administrative_area_level_1":
				if r.Province == "" {
					r.Province = c.LongName
				}
			case "country":
				if r.Country == "" {
					r.Country = c.LongName
				}
			case "postal_code":
				if r.ZipCode == "" {
					r.ZipCode = c.LongName
				}
			}
		}
	}

	return r
}
