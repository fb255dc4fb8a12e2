package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DEFAULT_PAR", "RATE_LIMIT_PER_MINUTE", "ENABLE_RATE_LIMIT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := New()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 72.0, cfg.DefaultPar)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.True(t, cfg.EnableRateLimit)
	assert.Contains(t, cfg.GetAllowedOrigins(), "http://localhost:3000")
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DEFAULT_PAR", "70")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("ALLOWED_ORIGINS", "https://golf.example.com, https://admin.golf.example.com")

	cfg := New()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 70.0, cfg.DefaultPar)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"https://golf.example.com", "https://admin.golf.example.com"}, cfg.GetAllowedOrigins())
}

func TestNew_InvalidParFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_PAR", "-4")
	assert.Equal(t, 72.0, New().DefaultPar)

	t.Setenv("DEFAULT_PAR", "abc")
	assert.Equal(t, 72.0, New().DefaultPar)
}

func TestGetAllowedOrigins_ProductionWithoutConfig(t *testing.T) {
	cfg := &Config{Environment: "production"}
	assert.Empty(t, cfg.GetAllowedOrigins())
}
