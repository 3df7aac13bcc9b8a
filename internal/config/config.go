// Package config loads the tunables of the pensool command.
//
// Values come from built-in defaults, then an optional TOML file, then
// PENSOOL_* environment variables, each layer overriding the one before.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable, e.g. PENSOOL_ITEM_SIZE.
const EnvPrefix = "PENSOOL"

// Config holds the tunables. Lengths are in device pixels.
type Config struct {
	Width    int    `toml:"width" envconfig:"WIDTH"`
	Height   int    `toml:"height" envconfig:"HEIGHT"`
	Surface  string `toml:"surface" envconfig:"SURFACE"`
	Output   string `toml:"output" envconfig:"OUTPUT"`
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`

	PenWidth          float64 `toml:"pen_width" envconfig:"PEN_WIDTH"`
	PickPenWidth      float64 `toml:"pick_pen_width" envconfig:"PICK_PEN_WIDTH"`
	ItemSize          float64 `toml:"item_size" envconfig:"ITEM_SIZE"`
	FadeTimeMS        int     `toml:"fade_time_ms" envconfig:"FADE_TIME_MS"`
	MovingPopupTimeMS int     `toml:"moving_popup_time_ms" envconfig:"MOVING_POPUP_TIME_MS"`
	SlowingThreshold  float64 `toml:"slowing_threshold" envconfig:"SLOWING_THRESHOLD"` // px/ms
	OffAxisPixels     float64 `toml:"off_axis_pixels" envconfig:"OFF_AXIS_PIXELS"`
	ZoomRate          float64 `toml:"zoom_rate" envconfig:"ZOOM_RATE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:    400,
		Height:   400,
		Surface:  "image",
		Output:   "pensool.png",
		LogLevel: "info",

		PenWidth:          1,
		PickPenWidth:      4,
		ItemSize:          20,
		FadeTimeMS:        500,
		MovingPopupTimeMS: 1000,
		SlowingThreshold:  0.1,
		OffAxisPixels:     2,
		ZoomRate:          0.5,
	}
}

// Load returns the configuration from path, which may be empty to skip the
// file, overlaid with the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: canvas size %dx%d must be positive", c.Width, c.Height)
	case c.PenWidth <= 0:
		return fmt.Errorf("config: pen_width %v must be positive", c.PenWidth)
	case c.PickPenWidth <= 0:
		return fmt.Errorf("config: pick_pen_width %v must be positive", c.PickPenWidth)
	case c.ItemSize <= 0:
		return fmt.Errorf("config: item_size %v must be positive", c.ItemSize)
	case c.FadeTimeMS <= 0 || c.MovingPopupTimeMS <= 0:
		return fmt.Errorf("config: timer delays must be positive")
	case c.SlowingThreshold <= 0:
		return fmt.Errorf("config: slowing_threshold %v must be positive", c.SlowingThreshold)
	case c.ZoomRate <= 0 || c.ZoomRate >= 1:
		return fmt.Errorf("config: zoom_rate %v must be in (0, 1)", c.ZoomRate)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FadeTime returns the fade delay.
func (c *Config) FadeTime() time.Duration {
	return time.Duration(c.FadeTimeMS) * time.Millisecond
}

// MovingPopupTime returns how long the pointer must stay slow to stop.
func (c *Config) MovingPopupTime() time.Duration {
	return time.Duration(c.MovingPopupTimeMS) * time.Millisecond
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
