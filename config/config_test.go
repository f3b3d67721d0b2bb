package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONTACT_TO", "owner@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.ContactTo)
	assert.Equal(t, "Portfolio <onboarding@resend.dev>", cfg.ContactFrom)
	assert.Equal(t, 3, cfg.ContactRateLimit)
	assert.Equal(t, 60, cfg.ContactRateWindowSeconds)
	assert.Equal(t, "log", cfg.EmailProvider)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_CONTACT_LIMIT", "5")
	t.Setenv("RATE_LIMIT_CONTACT_WINDOW_SECONDS", "not-a-number")
	t.Setenv("EMAIL_PROVIDER", "SendGrid")
	t.Setenv("CONTENT_WATCH", "true")
	t.Setenv("FRONTEND_URL", "https://amilemia.dev/")
	t.Setenv("S3_PROVIDER", "Wasabi")
	t.Setenv("AWS_REGION", "eu-central-1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.ContactRateLimit)
	assert.Equal(t, 60, cfg.ContactRateWindowSeconds)
	assert.Equal(t, "sendgrid", cfg.EmailProvider)
	assert.True(t, cfg.ContentWatch)
	assert.Equal(t, "https://amilemia.dev", cfg.FrontendURL)
	assert.Equal(t, "wasabi", cfg.S3Provider)
	assert.Equal(t, "eu-central-1", cfg.S3Region, "S3 region falls back to AWS_REGION")
}

func TestLoadConfig_RejectsNonPositiveRateLimit(t *testing.T) {
	tests := []struct {
		name   string
		limit  string
		window string
	}{
		{"zero", "0", "0"},
		{"negative", "-2", "-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_CONTACT_LIMIT", tt.limit)
			t.Setenv("RATE_LIMIT_CONTACT_WINDOW_SECONDS", tt.window)

			cfg, err := LoadConfig()
			require.NoError(t, err)

			assert.Equal(t, 3, cfg.ContactRateLimit)
			assert.Equal(t, 60, cfg.ContactRateWindowSeconds)
		})
	}
}
