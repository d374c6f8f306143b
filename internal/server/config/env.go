package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig holds raw environment values for the server configuration.
type envConfig struct {
	EndpointAddr          string        `env:"PUPTRACK_ADDRESS"`
	DatabaseDSN           string        `env:"PUPTRACK_DATABASE_DSN"`
	SecretKey             string        `env:"PUPTRACK_SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"PUPTRACK_TOKEN_TTL"`
	GoogleClientID        string        `env:"PUPTRACK_GOOGLE_CLIENT_ID"`
	RequestTimeout        time.Duration `env:"PUPTRACK_REQUEST_TIMEOUT"`
}

// parseEnv overlays PUPTRACK_* environment variables onto config. Unset
// variables leave the current values untouched.
func parseEnv(config *Config) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return
	}

	if raw.EndpointAddr != "" {
		config.EndpointAddr = raw.EndpointAddr
	}
	if raw.DatabaseDSN != "" {
		config.DatabaseDSN = raw.DatabaseDSN
	}
	if raw.SecretKey != "" {
		config.SecretKey = raw.SecretKey
	}
	if raw.GoogleClientID != "" {
		config.GoogleClientID = raw.GoogleClientID
	}
	if raw.TokenValidityDuration != 0 {
		config.TokenValidityDuration = raw.TokenValidityDuration
	}
	if raw.RequestTimeout != 0 {
		config.RequestTimeout = raw.RequestTimeout
	}
}
