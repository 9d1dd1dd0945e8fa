package config

import (
	"errors"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds the ambient settings of a run, populated from environment
// variables. The input file path is a command-line argument, not config.
type Config struct {
	LogLevel  string
	LogFormat string

	// MetricsTextfile, when set, receives the run's metrics in Prometheus
	// text exposition format after the report has been written.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
		MetricsTextfile: sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, errors.New("invalid LOG_LEVEL: want debug, info, warn or error")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("invalid LOG_FORMAT: want json or text")
	}

	return cfg, nil
}
