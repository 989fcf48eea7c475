package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// truncateString shortens a string for log previews
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client calls the OpenCage forward geocoding API
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient creates a geocoder client
func NewClient(cfg *Config, log *slog.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Log: log,
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Confidence int `json:"confidence"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// buildURL assembles the request URL with query and key
func (c *Client) buildURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.cfg.ApiKey)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")
	return c.cfg.BaseURL + "?" + params.Encode()
}

// Geocode resolves "city, country" to coordinates. The first result wins.
func (c *Client) Geocode(ctx context.Context, city, country string) (domain.Coordinates, error) {
	query := city
	if country != "" {
		query = city + ", " + country
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(query), nil)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{City: city, Country: country, Err: err}
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{City: city, Country: country, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{City: city, Country: country, Err: err}
	}

	rawJSON := string(body)

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("geocoding API returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return domain.Coordinates{}, &domain.GeocodingError{
			City:    city,
			Country: country,
			Err:     fmt.Errorf("geocoding API error [status=%d]: %s", resp.StatusCode, truncateString(rawJSON, 500)),
		}
	}

	var geocodeResp geocodeResponse
	if err := json.Unmarshal(body, &geocodeResp); err != nil {
		c.Log.Debug("failed to unmarshal geocoding response",
			"error", err,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return domain.Coordinates{}, &domain.GeocodingError{City: city, Country: country, Err: err}
	}

	if len(geocodeResp.Results) == 0 {
		return domain.Coordinates{}, &domain.GeocodingError{
			City:    city,
			Country: country,
			Err:     fmt.Errorf("no results for query %q", query),
		}
	}

	geometry := geocodeResp.Results[0].Geometry

	c.Log.Debug("place geocoded",
		"query", query,
		"lat", geometry.Lat,
		"lng", geometry.Lng,
		"confidence", geocodeResp.Results[0].Confidence,
	)

	return domain.Coordinates{
		Latitude:  geometry.Lat,
		Longitude: geometry.Lng,
	}, nil
}
