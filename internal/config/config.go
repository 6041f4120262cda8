package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a search run. Workers == 0 means "one per
// logical CPU", resolved by the caller.
type Config struct {
	Workers                 int    `yaml:"workers"`
	ProgressIntervalSeconds int    `yaml:"progressIntervalSeconds"`
	StallTimeoutSeconds     int    `yaml:"stallTimeoutSeconds"`
	MetricsLog              string `yaml:"metricsLog"`
}

func Default() Config {
	return Config{
		ProgressIntervalSeconds: 20,
		StallTimeoutSeconds:     60,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path means defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.ProgressIntervalSeconds <= 0 {
		return fmt.Errorf("progressIntervalSeconds must be positive, got %d", c.ProgressIntervalSeconds)
	}
	if c.StallTimeoutSeconds <= 0 {
		return fmt.Errorf("stallTimeoutSeconds must be positive, got %d", c.StallTimeoutSeconds)
	}
	return nil
}

func (c Config) ProgressInterval() time.Duration {
	return time.Duration(c.ProgressIntervalSeconds) * time.Second
}

func (c Config) StallTimeout() time.Duration {
	return time.Duration(c.StallTimeoutSeconds) * time.Second
}
