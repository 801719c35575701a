package config_test

import (
	"testing"
	"time"

	"github.com/amoghpatel/careerisk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CAREERISK_PORT", "CAREERISK_ENV",
		"WORKFORCE_BASE_URL", "WORKFORCE_ORG_ID", "WORKFORCE_API_KEY", "WORKFORCE_TIMEOUT",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL", "LLM_TIMEOUT",
		"REDIS_URL", "WORKFORCE_CACHE_TTL",
		"ASSESS_TIMEOUT", "CHAT_TIMEOUT", "DEMOGRAPHICS_WINDOW_MONTHS", "FLOWS_WINDOW_MONTHS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "https://api.livedatatechnologies.com", cfg.Workforce.BaseURL)
	assert.Equal(t, "https://api.anthropic.com", cfg.LLM.BaseURL)
	assert.Equal(t, 24, cfg.Assess.DemographicsMonths)
	assert.Equal(t, 12, cfg.Assess.FlowsMonths)
	assert.Equal(t, 60*time.Second, cfg.Assess.Timeout)
}

// Missing credentials must not fail startup: the service degrades instead.
func TestLoad_MissingKeysAllowed(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Workforce.APIKey)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAREERISK_PORT", "9090")
	t.Setenv("WORKFORCE_API_KEY", "wf-key")
	t.Setenv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929")
	t.Setenv("FLOWS_WINDOW_MONTHS", "6")
	t.Setenv("CHAT_TIMEOUT", "45s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "wf-key", cfg.Workforce.APIKey)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.LLM.Model)
	assert.Equal(t, 6, cfg.Assess.FlowsMonths)
	assert.Equal(t, 45*time.Second, cfg.Assess.ChatTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAREERISK_PORT", "not-a-number")
	t.Setenv("ASSESS_TIMEOUT", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Assess.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad workforce scheme", "WORKFORCE_BASE_URL", "ftp://example.com"},
		{"bad llm scheme", "ANTHROPIC_BASE_URL", "example.com"},
		{"port out of range", "CAREERISK_PORT", "70000"},
		{"zero demographics window", "DEMOGRAPHICS_WINDOW_MONTHS", "0"},
		{"negative flows window", "FLOWS_WINDOW_MONTHS", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
