package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_x")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8787", cfg.Port)
	assert.Equal(t, "http://localhost:8787", cfg.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.WebhookTolerance)
	assert.Equal(t, int64(1500), cfg.PlatformFeeBps)
	assert.Equal(t, "jpy", cfg.Currency)
}

func TestLoad_MissingSecretsFails(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsOutOfRangeFee(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_x")
	t.Setenv("PLATFORM_FEE_BPS", "10001")

	_, err := Load()
	assert.Error(t, err)
}
