package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"
)

// truncateString shortens a string for log previews
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// CustomerClient resolves customer ids to e-mail addresses through the
// provider REST API. Used as the last e-mail fallback during webhook
// ingestion.
type CustomerClient struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewCustomerClient creates a customer lookup client
func NewCustomerClient(cfg *Config, log *slog.Logger) *CustomerClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &CustomerClient{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Log: log,
	}
}

type customerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CustomerEmail fetches the e-mail stored on the customer object
func (c *CustomerClient) CustomerEmail(ctx context.Context, customerID string) (string, error) {
	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/customers/" + customerID

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build customer request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("customer request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read customer response: %w", err)
	}

	rawJSON := string(body)

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("payment API returned non-200 status for customer",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return "", fmt.Errorf("payment API error [status=%d]: %s", resp.StatusCode, truncateString(rawJSON, 500))
	}

	var customer customerResponse
	if err := json.Unmarshal(body, &customer); err != nil {
		c.Log.Debug("failed to unmarshal customer response",
			"error", err,
			"body_preview", truncateString(rawJSON, 200),
		)
		return "", fmt.Errorf("payment API unmarshal failed: %w", err)
	}

	if customer.Email == "" {
		return "", fmt.Errorf("customer %s has no email", customerID)
	}

	return customer.Email, nil
}
