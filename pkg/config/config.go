// Package config loads the construction-time options of a hexagon image view
// from YAML.
//
//	border_size: 10
//	border_color: white
//	filter_quality: low
//
// Every key is optional; missing keys keep their defaults.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/playdraft/hexagonview/pkg/errors"
	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/hexagon"
)

// Defaults for options that are not set.
const (
	DefaultBorderSize    = hexagon.DefaultBorderWidth
	DefaultBorderColor   = "white"
	DefaultFilterQuality = "low"
)

// Config holds the view options.
type Config struct {
	// BorderSize is the border thickness in pixels. Zero draws a one pixel hairline.
	BorderSize int `yaml:"border_size"`
	// BorderColor is any CSS color.
	BorderColor string `yaml:"border_color"`
	// FilterQuality selects the image sampling: none, low, medium or high.
	FilterQuality string `yaml:"filter_quality"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BorderSize:    DefaultBorderSize,
		BorderColor:   DefaultBorderColor,
		FilterQuality: DefaultFilterQuality,
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, errors.Wrap("config.Parse", errors.KindConfig, err)
	}
	cfg.BorderColor = strings.TrimSpace(cfg.BorderColor)
	cfg.FilterQuality = strings.ToLower(strings.TrimSpace(cfg.FilterQuality))
	if cfg.BorderColor == "" {
		cfg.BorderColor = DefaultBorderColor
	}
	if cfg.FilterQuality == "" {
		cfg.FilterQuality = DefaultFilterQuality
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap("config.Load", errors.KindIO, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is like Load but returns the defaults when the file does not
// exist or path is empty.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every option.
func (c Config) Validate() error {
	if c.BorderSize < 0 {
		return errors.Wrap("config.Validate", errors.KindConfig,
			fmt.Errorf("border_size must be >= 0, got %d", c.BorderSize))
	}
	if _, err := graphics.ParseColor(c.BorderColor); err != nil {
		return errors.Wrap("config.Validate", errors.KindConfig, fmt.Errorf("border_color: %w", err))
	}
	if _, err := ParseFilterQuality(c.FilterQuality); err != nil {
		return errors.Wrap("config.Validate", errors.KindConfig, err)
	}
	return nil
}

// Border returns the border described by the configuration.
func (c Config) Border() (hexagon.Border, error) {
	color, err := graphics.ParseColor(c.BorderColor)
	if err != nil {
		return hexagon.Border{}, errors.Wrap("config.Border", errors.KindConfig, err)
	}
	return hexagon.Border{Width: c.BorderSize, Color: color}, nil
}

// Quality returns the configured filter quality, falling back to low for
// unrecognized values.
func (c Config) Quality() graphics.FilterQuality {
	q, err := ParseFilterQuality(c.FilterQuality)
	if err != nil {
		return graphics.FilterQualityLow
	}
	return q
}

// ParseFilterQuality maps a quality name to its value.
func ParseFilterQuality(s string) (graphics.FilterQuality, error) {
	for _, q := range []graphics.FilterQuality{
		graphics.FilterQualityNone,
		graphics.FilterQualityLow,
		graphics.FilterQualityMedium,
		graphics.FilterQualityHigh,
	} {
		if strings.EqualFold(s, q.String()) {
			return q, nil
		}
	}
	return graphics.FilterQualityLow, fmt.Errorf("unknown filter_quality %q (want none, low, medium or high)", s)
}
