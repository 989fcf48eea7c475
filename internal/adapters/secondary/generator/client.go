package generator

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"google.golang.org/genai"
)

// Client generates narrative text through the Gemini API
type Client struct {
	client *genai.Client
	cfg    *Config
	log    *slog.Logger
}

// NewClient creates a Gemini client
func NewClient(ctx context.Context, cfg *Config, log *slog.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.ApiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	log.Info("generator client created", "model", cfg.Model)

	return &Client{
		client: client,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Generate sends the prompt and returns the model reply as text
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := c.cfg.Temperature

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", &domain.GenerationError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &domain.GenerationError{Err: fmt.Errorf("model returned empty reply")}
	}

	c.log.Debug("narrative generated",
		"model", c.cfg.Model,
		"prompt_len", len(prompt),
		"reply_len", len(text),
	)

	return text, nil
}
