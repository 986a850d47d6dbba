// Package weather implements the Visual Crossing timeline client.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/duynhne/trip-planner/internal/core/domain"
)

const (
	timelinePath   = "/VisualCrossingWebServices/rest/services/timeline"
	defaultTimeout = 10 * time.Second
	dateLayout     = "2006-01-02"
)

// Client calls the Visual Crossing timeline API. It implements
// domain.WeatherProvider.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL and API key. A nil
// httpClient gets a default with a request timeout.
func New(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Timeline fetches the per-day forecast for the location between start and
// end (inclusive). Location and dates travel as path segments; units are
// metric and only daily records are requested. Every failure mode —
// transport error, non-2xx status, undecodable body — comes back as an
// error for the caller to map to its own failure signal.
func (c *Client) Timeline(ctx context.Context, location string, start, end time.Time) (*domain.Forecast, error) {
	endpoint := fmt.Sprintf("%s%s/%s/%s/%s",
		c.baseURL,
		timelinePath,
		url.PathEscape(location),
		start.Format(dateLayout),
		end.Format(dateLayout),
	)

	q := url.Values{}
	q.Set("unitGroup", "metric")
	q.Set("include", "days")
	q.Set("key", c.apiKey)
	q.Set("contentType", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("location", location).Msg("Weather request failed")
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zerolog.Ctx(ctx).Error().
			Int("status", resp.StatusCode).
			Str("location", location).
			Msg("Weather upstream returned non-2xx")
		return nil, fmt.Errorf("weather upstream status %d", resp.StatusCode)
	}

	var forecast domain.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("location", location).Msg("Weather response undecodable")
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return &forecast, nil
}
