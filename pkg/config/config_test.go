package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelseyhightower/envconfig"
)

func TestProcess_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com", cfg.OpenAI.BaseURL)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.OpenAI.ModelID())
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:4200")
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestProcess_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("PORT", "9090")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))
	assert.Equal(t, "openai/gpt-4o", cfg.OpenAI.ModelID())
	assert.Equal(t, "9090", cfg.Server.Port)
}
