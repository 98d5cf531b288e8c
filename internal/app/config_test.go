package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Addr:        defaultAddr,
		DatabaseURL: "postgres://localhost/showroom",
		RedisURL:    "redis://localhost:6379/0",
		Stripe:      StripeConfig{SecretKey: "sk_test", WebhookSecret: "whsec_test"},
		JWT:         JWTConfig{Secret: "secret"},
	}
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("REDIS_URL", "redis://platform:6379/1")
	t.Setenv("PORT", "9090")

	cfg := Config{Addr: defaultAddr, RedisURL: "redis://localhost:6379/0"}
	cfg.applyPlatformDefaults()

	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "redis://platform:6379/1", cfg.RedisURL)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
}

func TestApplyPlatformDefaults_ExplicitWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "redis://platform:6379/1")
	t.Setenv("SHOWROOM_REDIS_URL", "redis://explicit:6379/0")

	cfg := Config{Addr: "127.0.0.1:8000", DatabaseURL: "postgres://explicit/db", RedisURL: "redis://explicit:6379/0"}
	cfg.applyPlatformDefaults()

	assert.Equal(t, "postgres://explicit/db", cfg.DatabaseURL)
	assert.Equal(t, "redis://explicit:6379/0", cfg.RedisURL)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Valid", func(*Config) {}, ""},
		{"NoDatabase", func(c *Config) { c.DatabaseURL = "" }, "database URL is required"},
		{"NoStripeKey", func(c *Config) { c.Stripe.SecretKey = "" }, "stripe secret key"},
		{"NoWebhookSecret", func(c *Config) { c.Stripe.WebhookSecret = "" }, "webhook secret"},
		{"NoJWTSecret", func(c *Config) { c.JWT.Secret = "" }, "jwt secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
