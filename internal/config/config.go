package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the careerisk server.
type Config struct {
	Server    ServerConfig
	Workforce WorkforceConfig
	LLM       LLMConfig
	Redis     RedisConfig
	Assess    AssessConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type WorkforceConfig struct {
	BaseURL string
	OrgID   string
	APIKey  string
	Timeout time.Duration
}

type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// RedisConfig is optional; an empty URL disables workforce-query caching.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type AssessConfig struct {
	Timeout            time.Duration
	ChatTimeout        time.Duration
	DemographicsMonths int
	FlowsMonths        int
}

// Load reads configuration from environment variables and returns a validated
// Config. Missing credentials are deliberately NOT errors: without a
// workforce key every workforce call returns empty and scores degrade to
// neutral, and without an LLM key the narrative falls back to its
// deterministic form.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("CAREERISK_PORT", 8080),
			Env:  envString("CAREERISK_ENV", "development"),
		},
		Workforce: WorkforceConfig{
			BaseURL: envString("WORKFORCE_BASE_URL", "https://api.livedatatechnologies.com"),
			OrgID:   os.Getenv("WORKFORCE_ORG_ID"),
			APIKey:  os.Getenv("WORKFORCE_API_KEY"),
			Timeout: envDuration("WORKFORCE_TIMEOUT", 20*time.Second),
		},
		LLM: LLMConfig{
			APIKey:  os.Getenv("ANTHROPIC_API_KEY"),
			Model:   os.Getenv("ANTHROPIC_MODEL"),
			BaseURL: envString("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Timeout: envDuration("LLM_TIMEOUT", 50*time.Second),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			CacheTTL: envDuration("WORKFORCE_CACHE_TTL", 6*time.Hour),
		},
		Assess: AssessConfig{
			Timeout:            envDuration("ASSESS_TIMEOUT", 60*time.Second),
			ChatTimeout:        envDuration("CHAT_TIMEOUT", 30*time.Second),
			DemographicsMonths: envInt("DEMOGRAPHICS_WINDOW_MONTHS", 24),
			FlowsMonths:        envInt("FLOWS_WINDOW_MONTHS", 12),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Workforce.BaseURL, "http://") && !strings.HasPrefix(c.Workforce.BaseURL, "https://") {
		return fmt.Errorf("WORKFORCE_BASE_URL must start with http:// or https://, got %q", c.Workforce.BaseURL)
	}
	if !strings.HasPrefix(c.LLM.BaseURL, "http://") && !strings.HasPrefix(c.LLM.BaseURL, "https://") {
		return fmt.Errorf("ANTHROPIC_BASE_URL must start with http:// or https://, got %q", c.LLM.BaseURL)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("CAREERISK_PORT must be a valid port, got %d", c.Server.Port)
	}
	if c.Assess.DemographicsMonths < 1 {
		return fmt.Errorf("DEMOGRAPHICS_WINDOW_MONTHS must be positive, got %d", c.Assess.DemographicsMonths)
	}
	if c.Assess.FlowsMonths < 1 {
		return fmt.Errorf("FLOWS_WINDOW_MONTHS must be positive, got %d", c.Assess.FlowsMonths)
	}
	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
