package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

const sendTimeout = 10 * time.Second

// Client posts alerts to a chat webhook (Slack-compatible payload)
type Client struct {
	httpClient *http.Client
	webhookURL string
	channel    string
	log        *slog.Logger
}

// NewClient creates a webhook alerter. Returns nil when cfg is nil so the
// callers can treat alerting as optional.
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.WebhookURL == "" {
		return nil
	}

	return &Client{
		httpClient: &http.Client{Timeout: sendTimeout},
		webhookURL: cfg.WebhookURL,
		channel:    cfg.Channel,
		log:        log,
	}
}

// SendAlert posts the message to the configured webhook
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	payload := map[string]string{
		"text": message,
	}
	if c.channel != "" {
		payload["channel"] = c.channel
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal alert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("failed to send alert", "error", err)
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("alert webhook returned error",
			"status", resp.StatusCode,
			"body_preview", string(respBody),
		)
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}

	c.log.Debug("alert sent successfully")
	return nil
}
