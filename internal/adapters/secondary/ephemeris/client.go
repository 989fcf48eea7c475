package ephemeris

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

const (
	getPositions = "data/positions"
	getAscendant = "charts/ascendant"
)

// truncateString shortens a string for log previews
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client calls the ephemeris API for planetary positions
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient creates an ephemeris API client
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		Log: log,
	}
}

// buildURL assembles the full URL from BaseURL, ApiVersion and endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders sets the standard request headers
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// post sends a JSON request and decodes the JSON response into out
func (c *Client) post(ctx context.Context, endpoint string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(endpoint), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	rawJSON := string(body)

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("ephemeris API returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return fmt.Errorf("ephemeris API error [status=%d]: %s", resp.StatusCode, truncateString(rawJSON, 500))
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.Log.Debug("failed to unmarshal ephemeris API response",
			"endpoint", endpoint,
			"error", err,
			"body_preview", truncateString(rawJSON, 200),
		)
		return fmt.Errorf("ephemeris API unmarshal failed [status=%d]: %w", resp.StatusCode, err)
	}

	return nil
}

// BodyLongitude returns the ecliptic longitude of body, normalized to [0, 360)
func (c *Client) BodyLongitude(ctx context.Context, jd float64, body domain.Body) (float64, error) {
	var positionsResp positionsResponse
	err := c.post(ctx, getPositions, positionsRequest{
		JulianDay: jd,
		Bodies:    []string{string(body)},
	}, &positionsResp)
	if err != nil {
		return 0, &domain.EphemerisError{Body: body, Err: err}
	}

	longitude, ok := positionsResp.Positions[string(body)]
	if !ok {
		return 0, &domain.EphemerisError{Body: body, Err: fmt.Errorf("position missing in response")}
	}

	return normalizeDegrees(longitude), nil
}

// AscendantLongitude returns the rising-point longitude, normalized to [0, 360)
func (c *Client) AscendantLongitude(ctx context.Context, jd float64, coords domain.Coordinates) (float64, error) {
	var ascResp ascendantResponse
	err := c.post(ctx, getAscendant, ascendantRequest{
		JulianDay: jd,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}, &ascResp)
	if err != nil {
		return 0, &domain.EphemerisError{Body: domain.BodyAscendant, Err: err}
	}

	return normalizeDegrees(ascResp.Ascendant), nil
}

// normalizeDegrees wraps an angle into [0, 360)
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
