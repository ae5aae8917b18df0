package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.Empty(t, cfg.RenderServiceURL)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AIBaseURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("RENDER_SERVICE_URL", "http://render.internal")
	t.Setenv("RENDER_TIMEOUT", "5s")
	t.Setenv("AI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://render.internal", cfg.RenderServiceURL)
	assert.Equal(t, 5*time.Second, cfg.RenderTimeout)
	assert.Equal(t, "test-key", cfg.AIAPIKey)
}
