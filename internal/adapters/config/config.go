package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/highlanderkev/investing-agents/pkg/errors"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	AI            AIConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"investing-agents"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"APP_VERSION" default:"0.1.0"`
}

type ServerConfig struct {
	Host      string `envconfig:"HOST" default:"0.0.0.0"`
	Port      int    `envconfig:"PORT" default:"8000"`
	PublicURL string `envconfig:"SERVER_URL"`
}

// URL returns the externally visible base URL advertised in the agent card.
func (c ServerConfig) URL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	return fmt.Sprintf("http://localhost:%d/", c.Port)
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AIConfig struct {
	// Provider selects the chat backend. The agent runs fine without any
	// key configured; it then answers from templates only.
	Provider    string        `envconfig:"AI_PROVIDER" default:"gemini"`
	GeminiKey   string        `envconfig:"GOOGLE_API_KEY"`
	GeminiModel string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	OpenAIKey   string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout     time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`

	// Request rate limiting toward the backend (requests per minute).
	ReqPerMinute float64 `envconfig:"AI_REQ_PER_MINUTE" default:"60"`
	Burst        int     `envconfig:"AI_BURST" default:"10"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
