package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/puptrack/puptrack/internal/flagx"
	"github.com/puptrack/puptrack/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files; its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	GoogleClientID        string         `json:"google_client_id"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When neither flag is present no
// file is loaded. An unreadable or invalid file panics: a server asked to use
// a config file it cannot read should not start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.GoogleClientID != "" {
		config.GoogleClientID = c.GoogleClientID
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
}
