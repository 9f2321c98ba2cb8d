// Package config loads viewer settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/paperboard/polyhedron/internal/input"
)

// Config holds all viewer configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// ClearColor is the background as r,g,b,a.
	ClearColor [4]float32 `yaml:"clear_color"`

	Steps StepsConfig `yaml:"steps"`

	// Bindings maps key names to action names, e.g. w: move_up.
	Bindings map[string]string `yaml:"bindings"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Samples   int    `yaml:"samples"` // multisample count, 0 disables
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

type StepsConfig struct {
	Translate float32 `yaml:"translate"`
	Rotate    float32 `yaml:"rotate"` // degrees
	Scale     float32 `yaml:"scale"`
}

func Default() *Config {
	steps := input.DefaultSteps()
	return &Config{
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Title:   "Polyhedron",
			Samples: 4,
			VSync:   true,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		Steps: StepsConfig{
			Translate: steps.Translate,
			Rotate:    steps.Rotate,
			Scale:     steps.Scale,
		},
		Bindings: input.DefaultBindings().Names(),
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// a bindings table in the file replaces the defaults rather than merging
	// with them, so a key can be freed by leaving it out
	defaults := cfg.Bindings
	cfg.Bindings = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = defaults
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", c.Window.Samples)
	}
	for i, ch := range c.ClearColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("clear_color[%d] out of range: %v", i, ch)
		}
	}
	if c.Steps.Translate <= 0 || c.Steps.Rotate <= 0 || c.Steps.Scale <= 0 {
		return fmt.Errorf("steps must be positive: %+v", c.Steps)
	}
	if _, err := input.ParseBindings(c.Bindings); err != nil {
		return fmt.Errorf("invalid bindings: %w", err)
	}
	return nil
}

// InputBindings returns the parsed key bindings. Call Validate first.
func (c *Config) InputBindings() (input.Bindings, error) {
	return input.ParseBindings(c.Bindings)
}

func (c *Config) InputSteps() input.Steps {
	return input.Steps{
		Translate: c.Steps.Translate,
		Rotate:    c.Steps.Rotate,
		Scale:     c.Steps.Scale,
	}
}
