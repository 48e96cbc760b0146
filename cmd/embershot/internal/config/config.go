// Package config loads the optional ember.yaml snapshot configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/rendering"
)

// Version is the toolkit version baked into the binary.
const Version = "v0.3.0"

// Config represents the optional ember.yaml configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
	Theme  ThemeConfig  `yaml:"theme"`
	Engine EngineConfig `yaml:"engine"`
}

// WindowConfig sets the surface dimensions.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// RenderConfig controls the frame sequence.
type RenderConfig struct {
	Frames int     `yaml:"frames,omitempty"`
	Delta  float64 `yaml:"delta,omitempty"`
	Output string  `yaml:"output,omitempty"`
}

// ThemeConfig overrides palette roles with hex colors ("#RRGGBB").
type ThemeConfig struct {
	Primary    string `yaml:"primary,omitempty"`
	Surface    string `yaml:"surface,omitempty"`
	OnSurface  string `yaml:"on_surface,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// EngineConfig pins toolkit compatibility.
type EngineConfig struct {
	// MinVersion is the lowest toolkit version the config is written
	// for, as a semver string ("v0.2.0").
	MinVersion string `yaml:"min_version,omitempty"`
}

// Resolved contains resolved configuration values with defaults
// applied.
type Resolved struct {
	Width      int
	Height     int
	Frames     int
	Delta      float32
	Output     string
	Primary    rendering.Color
	Surface    rendering.Color
	OnSurface  rendering.Color
	Background rendering.Color
}

// LoadOptional reads ember.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ember.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read ember.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ember.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads ember.yaml (if present), validates it and applies
// defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if err := validateEngineVersion(cfg.Engine.MinVersion); err != nil {
		return nil, err
	}

	r := &Resolved{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Frames: cfg.Render.Frames,
		Delta:  float32(cfg.Render.Delta),
		Output: strings.TrimSpace(cfg.Render.Output),
	}
	if r.Width <= 0 {
		r.Width = 480
	}
	if r.Height <= 0 {
		r.Height = 360
	}
	if r.Frames <= 0 {
		r.Frames = 60
	}
	if r.Delta <= 0 {
		r.Delta = 1.0 / 60.0
	}
	if r.Output == "" {
		r.Output = "embershot.png"
	}

	r.Primary, err = parseColor(cfg.Theme.Primary, 0xFFD0BCFF)
	if err != nil {
		return nil, err
	}
	r.Surface, err = parseColor(cfg.Theme.Surface, 0xFF211F26)
	if err != nil {
		return nil, err
	}
	r.OnSurface, err = parseColor(cfg.Theme.OnSurface, 0xFFE6E0E9)
	if err != nil {
		return nil, err
	}
	r.Background, err = parseColor(cfg.Theme.Background, 0xFF141218)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// validateEngineVersion rejects configs written for a newer toolkit.
func validateEngineVersion(minVersion string) error {
	minVersion = strings.TrimSpace(minVersion)
	if minVersion == "" {
		return nil
	}
	if !semver.IsValid(minVersion) {
		return fmt.Errorf("engine.min_version %q is not a valid semver string", minVersion)
	}
	if semver.Compare(minVersion, Version) > 0 {
		return fmt.Errorf("config requires toolkit %s or newer, this is %s", minVersion, Version)
	}
	return nil
}

// parseColor parses "#RRGGBB" or "#AARRGGBB"; empty input yields the
// fallback.
func parseColor(s string, fallback rendering.Color) (rendering.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}

	var v uint32
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, fmt.Errorf("invalid color %q: bad hex digit %q", s, hex[i])
		}
		v = v<<4 | uint32(d)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return rendering.Color(v), nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
