package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration, loaded from the environment.
type Config struct {
	SpannerDB string `envconfig:"SPANNER_DB" default:"projects/test-project/instances/dev-instance/databases/order-management-db"`
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
