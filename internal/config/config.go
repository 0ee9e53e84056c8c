package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the binaries read from the environment.
// Secrets (Stripe keys, Resend key) are consumed here and must never be logged.
type Config struct {
	StripeSecretKey     string   `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string   `env:"STRIPE_WEBHOOK_SECRET"`
	ResendAPIKey        string   `env:"RESEND_API_KEY"`
	EmailFrom           string   `env:"EMAIL_FROM" envDefault:"Evangelical Threads <orders@evangelicalthreads.com>"`
	OrdersTable         string   `env:"ORDERS_TABLE" envDefault:"orders"`
	CartsTable          string   `env:"CARTS_TABLE" envDefault:"carts"`
	OrderEventsQueueURL string   `env:"ORDER_EVENTS_QUEUE_URL"`
	AllowedCountries    []string `env:"ALLOWED_SHIPPING_COUNTRIES" envDefault:"US"`
	// FallbackOrigin is used for success/cancel URLs when the request carries no Origin header.
	FallbackOrigin string `env:"STORE_BASE_URL" envDefault:"https://evangelicalthreads.com"`
	// WebhookDevMode accepts unsigned webhook payloads. Local development only.
	WebhookDevMode bool `env:"WEBHOOK_DEV_MODE"`
	RunLocal       bool `env:"RUN_LOCAL"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
