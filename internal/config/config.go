// Package config holds the runtime settings shared by every life
// command, with YAML persistence for reusable setups.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 64
	DefaultHeight      = 64
	DefaultPattern     = "default"
	DefaultSeed        = 42
	DefaultTPS         = 30
	DefaultScale       = 8
	DefaultGenerations = 500
)

// Config holds the settings for a simulation run.
type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Pattern     string `yaml:"pattern"`
	Seed        int64  `yaml:"seed"`
	TPS         int    `yaml:"tps"`
	Scale       int    `yaml:"scale"`
	Generations int    `yaml:"generations"`
	Workers     int    `yaml:"workers"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Pattern:     DefaultPattern,
		Seed:        DefaultSeed,
		TPS:         DefaultTPS,
		Scale:       DefaultScale,
		Generations: DefaultGenerations,
		Workers:     1,
	}
}

// Load reads a YAML config file over the defaults, so a partial file
// only overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %+v", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", path)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[Save] failed to marshal config")
	}
	return os.WriteFile(path, data, 0644)
}

// Dump renders the config as YAML for display.
func Dump(cfg *Config) string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ""
	}
	return string(data)
}
