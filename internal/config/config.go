package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

const envPrefix = "hotel"

// Config represents the hoteladm configuration structure
type Config struct {
	// API client settings
	APIBaseURL string        `split_words:"true" default:"http://localhost:8080/api"`
	APIToken   string        `split_words:"true"`
	APITimeout time.Duration `split_words:"true" default:"15s"`

	// Backend settings used by 'hoteladm serve'
	PostgresDSN   string `split_words:"true" default:"host=localhost user=hotel dbname=hotel sslmode=disable"`
	ListenAddress string `split_words:"true" default:":8080"`

	Environment string `default:"development"`
	LogLevel    string `split_words:"true" default:"info"`
}

// IsEnvProduction checks whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "prod" || config.Environment == "production"
}

// ZerologLevel parses LogLevel. Production defaults to info when the level is
// not recognised, any other environment to debug.
func (config *Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		if config.IsEnvProduction() {
			return zerolog.InfoLevel
		}
		return zerolog.DebugLevel
	}
	return level
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Variables already present in the environment win over the .env file
	_ = godotenv.Load()

	config := new(Config)
	if err := envconfig.Process(envPrefix, config); err != nil {
		return nil, fmt.Errorf("cannot process environment: %w", err)
	}
	if config.APITimeout <= 0 {
		return nil, fmt.Errorf("HOTEL_API_TIMEOUT must be positive, got %s", config.APITimeout)
	}
	return config, nil
}
