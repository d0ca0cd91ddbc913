// Package discord provides the Discord webhook wire types and a minimal
// client for delivering a single webhook message.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Discord rejects messages with more than 10 embeds or field values longer
// than 1024 characters.
const (
	MaxEmbeds       = 10
	MaxFieldLength  = 1024
	deliveryTimeout = 10 * time.Second
)

// EmbedField represents a single name/value pair rendered inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Embed represents a Discord rich embed.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields"`
	Timestamp   string       `json:"timestamp"`
}

// WebhookMessage is the payload posted to a Discord webhook URL.
type WebhookMessage struct {
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatar_url"`
	Content   string  `json:"content,omitempty"`
	Embeds    []Embed `json:"embeds"`
}

// Client handles the dispatch of webhook messages to Discord.
type Client struct {
	webhookURL string
	client     *http.Client
}

// NewClient initializes a Client with a configured webhook URL and a bounded
// HTTP timeout.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: deliveryTimeout,
		},
	}
}

// Send delivers a single webhook message. Any transport error or non-2xx
// response is a failure; there is exactly one attempt, the caller owns retry
// policy.
func (c *Client) Send(ctx context.Context, msg WebhookMessage) error {
	if c.webhookURL == "" {
		return fmt.Errorf("discord webhook URL not configured")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord returned status: %d", resp.StatusCode)
	}

	return nil
}
