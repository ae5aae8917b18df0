// Package config loads runtime configuration from the environment. Every
// credential-like value (database DSN, AI key) lives here and is injected
// into its consumer at startup; nothing reads the environment after boot.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"3000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL string `env:"DATABASE_URL"`

	// RenderServiceURL points at a peer instance (or any compatible
	// service) used for the remote export strategy. Empty disables it.
	RenderServiceURL string        `env:"RENDER_SERVICE_URL"`
	RenderTimeout    time.Duration `env:"RENDER_TIMEOUT" envDefault:"30s"`

	ChromePath string `env:"CHROME_PATH"`

	AIBaseURL string `env:"AI_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	AIAPIKey  string `env:"AI_API_KEY"`
	AIModel   string `env:"AI_MODEL" envDefault:"deepseek/deepseek-r1-0528:free"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
