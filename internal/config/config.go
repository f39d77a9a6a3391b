// Package config loads planner configuration from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeTemplate = "template"
	ModeLive     = "live"

	CatalogBuiltin  = "builtin"
	CatalogPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Port      string
	LogLevel  string
	LogPretty bool

	// PlannerMode selects template synthesis or live LLM generation with template fallback.
	PlannerMode string

	LLM LLMConfig

	CatalogSource string
	PostgresURL   string
}

// LLMConfig holds the text-generation provider settings
type LLMConfig struct {
	Provider       string // openai | gemini
	APIKey         string
	Model          string
	BaseURL        string // OpenAI-compatible endpoint override
	Timeout        time.Duration
	RepairAttempts int
	RepairPause    time.Duration
}

// Enabled reports whether a provider is configured well enough to be called.
func (c LLMConfig) Enabled() bool {
	return c.Provider != "" && c.APIKey != ""
}

// Load reads the .env file when present and builds the configuration.
func Load() *Config {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	provider := strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "openai"))

	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		LogPretty:   getEnvBool("LOG_PRETTY", false),
		PlannerMode: strings.ToLower(getEnvWithDefault("PLANNER_MODE", ModeTemplate)),
		LLM: LLMConfig{
			Provider:       provider,
			APIKey:         os.Getenv("LLM_API_KEY"),
			Model:          getEnvWithDefault("LLM_MODEL", defaultModel(provider)),
			BaseURL:        os.Getenv("LLM_BASE_URL"),
			Timeout:        getEnvDuration("LLM_TIMEOUT", 30*time.Second),
			RepairAttempts: getEnvInt("LLM_REPAIR_ATTEMPTS", 5),
			RepairPause:    getEnvDuration("LLM_REPAIR_PAUSE", 200*time.Millisecond),
		},
		CatalogSource: strings.ToLower(getEnvWithDefault("CATALOG_SOURCE", CatalogBuiltin)),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
	}

	if cfg.PlannerMode != ModeLive {
		cfg.PlannerMode = ModeTemplate
	}

	return cfg
}

func defaultModel(provider string) string {
	if provider == "gemini" {
		return "gemini-1.5-flash"
	}
	return "qwen-plus"
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration accepts Go durations ("45s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
