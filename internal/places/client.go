// Package places wraps the autocomplete capability (Places Autocomplete API
// wire shape), restricted to Philippine results.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place/autocomplete/json"

// countryRestriction limits predictions to the Philippines.
const countryRestriction = "country:ph"

// Client fetches autocomplete predictions for a partial query.
type Client interface {
	Autocomplete(ctx context.Context, query string) ([]Prediction, error)
	Configured() bool
}

// Prediction is one raw autocomplete candidate, in upstream order.
type Prediction struct {
	Description   string
	MainText      string
	SecondaryText string
}

type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
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
}

// NewClient creates an autocomplete client. An empty apiKey yields an
// unconfigured client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Configured() bool { return c.apiKey != "" }

func (c *httpClient) Autocomplete(ctx context.Context, query string) ([]Prediction, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("places: api key not configured")
	}

	params := url.Values{
		"input":      {query},
		"components": {countryRestriction},
		"key":        {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("places: read body: %w", err)
	}

	var decoded autocompleteResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("places: parse response: %w", err)
	}

	if decoded.Status != "OK" {
		return nil, nil
	}

	predictions := make([]Prediction, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		predictions = append(predictions, Prediction{
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return predictions, nil
}
