package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:4200,http://127.0.0.1:4200"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// OpenAIConfig holds the LLM provider configuration
type OpenAIConfig struct {
	APIKey   string `envconfig:"OPENAI_API_KEY"`
	BaseURL  string `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
	Provider string `envconfig:"OPENAI_PROVIDER" default:"openai"`
	Model    string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// ModelID returns the provider/model identifier stamped into records
// produced by the primary extraction path.
func (c OpenAIConfig) ModelID() string {
	return fmt.Sprintf("%s/%s", c.Provider, c.Model)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}
