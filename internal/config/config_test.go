package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("IDEMPOTENCY_TTL", "not-a-duration")
	t.Setenv("LLM_RATE_PER_MINUTE", "x")

	cfg := Load()

	assert.Equal(t, "", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.App.IdempotencyTTL)
	assert.Equal(t, 30, cfg.Ai.LLMRatePerMinute)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 3*time.Second, cfg.Ai.LLMTimeout)
	assert.True(t, cfg.Otel.Enabled)
	assert.True(t, cfg.App.IsProduction())
}
