// Package config loads the optional tide.yaml file that tunes the toolkit's
// prefix and theme. A missing file is not an error: everything has a
// default. Malformed values inside a well-formed file warn and fall back
// instead of failing, so a stray color name never takes the page down.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-tide/tide/pkg/core"
	tideerrors "github.com/go-tide/tide/pkg/errors"
	"github.com/go-tide/tide/pkg/theme"
)

// File is the configuration file name looked up in a project directory.
const File = "tide.yaml"

// Config represents the optional tide.yaml configuration.
type Config struct {
	Prefix string      `yaml:"prefix,omitempty"`
	Theme  ThemeConfig `yaml:"theme"`
}

// ThemeConfig tunes the generated theme.
type ThemeConfig struct {
	// Palette selects the base palette: "light" (default) or "dark".
	Palette string `yaml:"palette,omitempty"`
	// Colors overrides palette entries by name ("primary", "ink", …) with
	// CSS color strings.
	Colors map[string]string `yaml:"colors,omitempty"`
	// Durations tunes timing tokens.
	Durations DurationsConfig `yaml:"durations"`
}

// DurationsConfig carries timing overrides in time.ParseDuration notation.
type DurationsConfig struct {
	SnackbarShow string `yaml:"snackbar_show,omitempty"`
	RippleFade   string `yaml:"ripple_fade,omitempty"`
}

// Resolved contains the values the toolkit actually runs with.
type Resolved struct {
	Prefix string
	Theme  *theme.Theme
}

// LoadOptional reads tide.yaml from dir if present. A missing file yields an
// empty configuration; unreadable or unparsable files are configuration
// errors.
func LoadOptional(dir string) (*Config, error) {
	const op = "config.LoadOptional"
	path := filepath.Join(dir, File)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, tideerrors.Config(op, fmt.Errorf("read %s: %w", File, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, tideerrors.Config(op, fmt.Errorf("parse %s: %w", File, err))
	}
	return &cfg, nil
}

// Resolve turns the configuration into a prefix and a theme, applying
// defaults. Invalid palette names, color values and durations warn through
// the global handler and fall back; Resolve never fails.
func (c *Config) Resolve() *Resolved {
	const op = "config.Resolve"

	prefix := strings.TrimSpace(c.Prefix)
	if prefix == "" {
		prefix = core.DefaultPrefix
	}

	palette := theme.Light()
	switch strings.ToLower(strings.TrimSpace(c.Theme.Palette)) {
	case "", "light":
	case "dark":
		palette = theme.Dark()
	default:
		tideerrors.Warnf(op, "unknown palette %q, using light", c.Theme.Palette)
	}

	for key, value := range c.Theme.Colors {
		parsed, err := theme.ParseColor(value)
		if err != nil {
			tideerrors.Warnf(op, "color %s: %v, keeping palette default", key, err)
			continue
		}
		if !setPaletteColor(&palette, key, parsed) {
			tideerrors.Warnf(op, "unknown color key %q, ignoring", key)
		}
	}

	snack := theme.DefaultSnackbarTheme(palette)
	snack.ShowDuration = parseDuration(op, "snackbar_show",
		c.Theme.Durations.SnackbarShow, theme.DefaultShowDuration)
	ink := theme.DefaultRippleTheme(palette)
	ink.Duration = parseDuration(op, "ripple_fade",
		c.Theme.Durations.RippleFade, theme.DefaultFadeDuration)

	return &Resolved{
		Prefix: prefix,
		Theme: &theme.Theme{
			Palette:       palette,
			SnackbarTheme: &snack,
			RippleTheme:   &ink,
		},
	}
}

func setPaletteColor(p *theme.Palette, key string, c color.RGBA) bool {
	switch strings.ToLower(key) {
	case "primary":
		p.Primary = c
	case "on-primary":
		p.OnPrimary = c
	case "surface":
		p.Surface = c
	case "on-surface":
		p.OnSurface = c
	case "surface-variant":
		p.SurfaceVariant = c
	case "on-surface-variant":
		p.OnSurfaceVariant = c
	case "outline":
		p.Outline = c
	case "error":
		p.Error = c
	case "on-error":
		p.OnError = c
	case "ink":
		p.Ink = c
	default:
		return false
	}
	return true
}

func parseDuration(op, key, value string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		tideerrors.Warnf(op, "duration %s=%q is invalid, using %s", key, value, fallback)
		return fallback
	}
	return d
}
