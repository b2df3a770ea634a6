package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads, validates, and defaults the application configuration. When
// path is empty, config.yml in the working directory is tried.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		path = "config.yml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.APIKey = os.Getenv("ODPT_API_KEY")
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.CacheTTLMS == 0 {
		cfg.Server.CacheTTLMS = 5000
	}
	if cfg.ODPT.TimeoutMS == 0 {
		cfg.ODPT.TimeoutMS = 10000
	}
	if cfg.Engine.MaxDistanceMeters == 0 {
		cfg.Engine.MaxDistanceMeters = 500
	}
	if cfg.Engine.FreshThresholdSec == 0 {
		cfg.Engine.FreshThresholdSec = 30
	}
	if cfg.Engine.StaleThresholdSec == 0 {
		cfg.Engine.StaleThresholdSec = 120
	}
	if cfg.History.Enabled && cfg.History.DatabasePath == "" {
		cfg.History.DatabasePath = "yamanote-history.db"
	}
}
