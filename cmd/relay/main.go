// Package main provides the entry point for the Alertmanager to Discord
// relay service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"alertrelay/internal/config"
	"alertrelay/internal/logging"
	"alertrelay/internal/server"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrWebhookURLMissing) {
			printWebhookInstructions()
		}
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	srv := server.New(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
			os.Exit(1)
		}
	}
}

func printWebhookInstructions() {
	fmt.Fprintln(os.Stderr, "ERROR: DISCORD_WEBHOOK_URL environment variable not set!")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "To get a Discord webhook URL:")
	fmt.Fprintln(os.Stderr, "  1. Open Discord and go to Server Settings")
	fmt.Fprintln(os.Stderr, "  2. Navigate to Integrations > Webhooks")
	fmt.Fprintln(os.Stderr, "  3. Click 'New Webhook'")
	fmt.Fprintln(os.Stderr, "  4. Configure the webhook and copy the URL")
	fmt.Fprintln(os.Stderr, "  5. Set the environment variable:")
	fmt.Fprintln(os.Stderr, "     export DISCORD_WEBHOOK_URL='https://discord.com/api/webhooks/...'")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Then restart the relay.")
}
