package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8787"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	// BaseURL is the public origin used for checkout/onboarding redirect targets.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8787"`

	// WebhookTolerance is the maximum accepted age of a webhook timestamp.
	WebhookTolerance time.Duration `env:"WEBHOOK_TOLERANCE" envDefault:"5m"`

	// PlatformFeeBps is the platform's cut of split payments, in basis points.
	PlatformFeeBps int64 `env:"PLATFORM_FEE_BPS" envDefault:"1500"`

	// Currency for inline checkout price data, lowercase ISO 4217.
	Currency string `env:"CURRENCY" envDefault:"jpy"`

	// RedisURL enables the Redis-backed webhook event ledger when set.
	RedisURL string `env:"REDIS_URL"`
}

func Load() (*Config, error) {
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.StripeSecretKey == "" || cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}
	if cfg.PlatformFeeBps < 0 || cfg.PlatformFeeBps > 10000 {
		return nil, fmt.Errorf("PLATFORM_FEE_BPS must be between 0 and 10000")
	}

	return cfg, nil
}
