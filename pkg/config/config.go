package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config represents a complete render configuration
type Config struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	TileSize        int    `yaml:"tile_size"`
	Workers         int    `yaml:"workers"` // 0 means one per CPU
	Seed            int64  `yaml:"seed"`
	Scene           string `yaml:"scene"`  // default, simple
	Output          string `yaml:"output"` // PNG file path
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Width:           1280,
		Height:          720,
		SamplesPerPixel: 16,
		MaxDepth:        16,
		TileSize:        16,
		Workers:         0,
		Seed:            42,
		Scene:           "default",
		Output:          "output.png",
	}
}

// LoadConfig loads the configuration from a file.
// Keys missing from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config %s: %w", filePath, err)
	}

	return config, config.Validate()
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks that every setting is usable for a render
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"samples_per_pixel", c.SamplesPerPixel},
		{"max_depth", c.MaxDepth},
		{"tile_size", c.TileSize},
	}
	for _, field := range positive {
		if field.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field.name, field.value)
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output must be set", ErrInvalidConfig)
	}

	return nil
}

// Sampling returns the per-pixel sampling settings
func (c *Config) Sampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
	}
}

// Parallel returns the tile and worker settings
func (c *Config) Parallel() renderer.ParallelConfig {
	return renderer.ParallelConfig{
		TileSize:   c.TileSize,
		NumWorkers: c.Workers,
		Seed:       c.Seed,
	}
}
