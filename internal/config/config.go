// Package config handles configuration loading and shared defaults.
package config

import (
	"fmt"
	"os"

	"github.com/openmag/geomag/internal/bfield"
	"github.com/openmag/geomag/internal/trace"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// Model selects the field model by registry name.
	Model string `yaml:"model" json:"model"`

	// Field carries model parameters.
	Field bfield.Config `yaml:"field" json:"field"`

	// Tracer tunes the field line tracer; zero values select defaults.
	Tracer trace.Options `yaml:"tracer" json:"tracer"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Model: "dungey"}
}

// Load reads and parses the YAML configuration file from the specified
// path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Model == "" {
		cfg.Model = "dungey"
	}

	return cfg, nil
}

// BuildModel resolves the configured field model.
func (c *Config) BuildModel() (bfield.Model, error) {
	m, err := bfield.New(c.Model, c.Field)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return m, nil
}
