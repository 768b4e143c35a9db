// Package config loads viewer configuration from YAML: canvas settings,
// logging, and sparse keymap overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Canvas  CanvasConfig      `yaml:"canvas"`
	Logging LoggingConfig     `yaml:"logging"`
	Keymap  map[string]string `yaml:"keymap"` // key name -> action name
}

type CanvasConfig struct {
	Height  int    `yaml:"height"`
	Width   int    `yaml:"width"`
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
	Grid    *bool  `yaml:"grid"` // nil = default (shown)
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: 1000x500 canvas, grid shown,
// info-level console logging, no keymap overrides
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Height: 500,
			Width:  1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults. Unset fields keep
// their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return nil, fmt.Errorf("config: canvas size must be positive, got %dx%d",
			cfg.Canvas.Width, cfg.Canvas.Height)
	}
	return cfg, nil
}

// GridVisible resolves the optional grid flag, defaulting to shown
func (c CanvasConfig) GridVisible() bool {
	if c.Grid == nil {
		return true
	}
	return *c.Grid
}
