// Package config provides configuration loading for the relay. All settings
// come from the environment (optionally seeded from a .env file by the
// caller) and are immutable after startup.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrWebhookURLMissing is returned when DISCORD_WEBHOOK_URL is not set. The
// relay cannot do anything useful without a destination.
var ErrWebhookURLMissing = errors.New("DISCORD_WEBHOOK_URL not set")

// Config represents the full relay configuration.
type Config struct {
	Webhook WebhookConfig
	Discord DiscordConfig
	Log     LogConfig
}

// WebhookConfig defines where the inbound Alertmanager listener binds.
type WebhookConfig struct {
	Host string
	Port int
}

// DiscordConfig defines the outbound Discord webhook destination and the
// identity the relay posts under.
type DiscordConfig struct {
	WebhookURL string
	Username   string
	AvatarURL  string
}

// LogConfig defines logging level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. Key names map to env vars
// with dots replaced by underscores, e.g. discord.webhook_url becomes
// DISCORD_WEBHOOK_URL.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("webhook.host", "0.0.0.0")
	v.SetDefault("webhook.port", 5001)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("relay.username", "Alertmanager")
	v.SetDefault("relay.avatar_url", "https://raw.githubusercontent.com/prometheus/prometheus/main/documentation/images/prometheus-logo.svg")

	cfg := &Config{
		Webhook: WebhookConfig{
			Host: v.GetString("webhook.host"),
			Port: v.GetInt("webhook.port"),
		},
		Discord: DiscordConfig{
			WebhookURL: v.GetString("discord.webhook_url"),
			Username:   v.GetString("relay.username"),
			AvatarURL:  v.GetString("relay.avatar_url"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.Webhook.Port <= 0 || cfg.Webhook.Port > 65535 {
		return nil, fmt.Errorf("invalid webhook port: %d", cfg.Webhook.Port)
	}

	return cfg, nil
}

// Validate reports whether the configuration is complete enough to serve.
func (c *Config) Validate() error {
	if c.Discord.WebhookURL == "" {
		return ErrWebhookURLMissing
	}
	return nil
}

// ListenAddr returns the host:port the inbound listener binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Webhook.Host, c.Webhook.Port)
}
