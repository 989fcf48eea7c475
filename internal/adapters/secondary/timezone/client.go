package timezone

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

// Client resolves coordinates to IANA zone names through a lookup API.
// Resolution never fails the pipeline: any error falls back to the
// configured default zone.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient creates a timezone lookup client
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

type zoneResponse struct {
	TimeZone string `json:"timeZone"`
}

// ZoneFor returns the IANA zone covering coords, or the default zone when
// the lookup fails or the returned name does not load.
func (c *Client) ZoneFor(ctx context.Context, coords domain.Coordinates) (string, error) {
	zone, err := c.lookup(ctx, coords)
	if err != nil {
		c.Log.Warn("timezone lookup failed, using default zone",
			"error", &domain.TimeZoneResolutionError{
				Latitude:  coords.Latitude,
				Longitude: coords.Longitude,
				Err:       err,
			},
			"default_zone", c.cfg.DefaultZone,
		)
		return c.cfg.DefaultZone, nil
	}

	// reject names the tz database does not know
	if _, err := time.LoadLocation(zone); err != nil {
		c.Log.Warn("timezone lookup returned unknown zone, using default",
			"error", &domain.TimeZoneResolutionError{
				Latitude:  coords.Latitude,
				Longitude: coords.Longitude,
				Err:       fmt.Errorf("unknown zone %q: %w", zone, err),
			},
			"default_zone", c.cfg.DefaultZone,
		)
		return c.cfg.DefaultZone, nil
	}

	return zone, nil
}

func (c *Client) lookup(ctx context.Context, coords domain.Coordinates) (string, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", coords.Longitude))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timezone API error [status=%d]", resp.StatusCode)
	}

	var zoneResp zoneResponse
	if err := json.Unmarshal(body, &zoneResp); err != nil {
		return "", fmt.Errorf("timezone API unmarshal failed: %w", err)
	}

	if zoneResp.TimeZone == "" {
		return "", fmt.Errorf("timezone API returned empty zone")
	}

	return zoneResp.TimeZone, nil
}
