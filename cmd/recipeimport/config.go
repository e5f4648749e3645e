package main

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/fwojciec/recipeimport"
)

// Supported LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds runtime configuration read from the environment.
// Command-line flags take precedence over every field.
type Config struct {
	OpenAIKey string `env:"OPENAI_API_KEY"`
	GeminiKey string `env:"GEMINI_API_KEY"`

	Provider string `env:"RECIPEIMPORT_PROVIDER" envDefault:"openai"`
	Model    string `env:"RECIPEIMPORT_MODEL"`

	Addr     string `env:"RECIPEIMPORT_ADDR" envDefault:":8080"`
	LogLevel string `env:"RECIPEIMPORT_LOG_LEVEL"`
}

// LoadConfig reads configuration from environ. A nil environ reads the
// process environment.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, recipeimport.Errorf(recipeimport.EINVALID, "invalid environment: %v", err)
	}
	return cfg, nil
}

// Validate checks the provider name.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
		return nil
	}
	return recipeimport.Errorf(recipeimport.EINVALID, "unknown provider %q (want openai or gemini)", c.Provider)
}

// Credential returns the API key configured for the selected provider.
func (c Config) Credential() string {
	if c.Provider == ProviderGemini {
		return c.GeminiKey
	}
	return c.OpenAIKey
}

// Level returns the configured log level, falling back to def when the
// level is unset or unrecognized.
func (c Config) Level(def slog.Level) slog.Level {
	if c.LogLevel == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return def
	}
	return level
}
