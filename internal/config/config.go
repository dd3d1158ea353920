// Package config loads ShapePad settings from a TOML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfigPath points at an alternative config file.
	EnvConfigPath = "SHAPEPAD_CONFIG"
	EnvLogLevel   = "LOG_LEVEL"
	EnvDebug      = "DEBUG"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Editor  EditorConfig  `toml:"editor"`
	Canvas  CanvasConfig  `toml:"canvas"`
	Theme   ThemeConfig   `toml:"theme"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title       string  `toml:"title"`
	Width       float32 `toml:"width"`
	Height      float32 `toml:"height"`
	SplitOffset float64 `toml:"split_offset"`
}

type EditorConfig struct {
	// DefaultExtension is appended on save when the chosen name lacks it.
	DefaultExtension string `toml:"default_extension"`
	WordWrap         bool   `toml:"word_wrap"`
}

type CanvasConfig struct {
	Width        float32 `toml:"width"`
	Height       float32 `toml:"height"`
	StrokeWidth  float32 `toml:"stroke_width"`
	OvalSegments int     `toml:"oval_segments"`
}

type ThemeConfig struct {
	StartDark bool `toml:"start_dark"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:       "Text Editor with Shapes",
			Width:       1000,
			Height:      600,
			SplitOffset: 0.55,
		},
		Editor: EditorConfig{
			DefaultExtension: ".txt",
			WordWrap:         true,
		},
		Canvas: CanvasConfig{
			Width:        400,
			Height:       600,
			StrokeWidth:  1.5,
			OvalSegments: 48,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns $SHAPEPAD_CONFIG or <user config dir>/shapepad/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shapepad", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	switch {
	case os.Getenv(EnvLogLevel) != "":
		c.Logging.Level = os.Getenv(EnvLogLevel)
	case os.Getenv(EnvDebug) == "1":
		c.Logging.Level = "debug"
	}
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Window.SplitOffset <= 0 || c.Window.SplitOffset >= 1 {
		return fmt.Errorf("split_offset must be between 0 and 1, got %v", c.Window.SplitOffset)
	}
	if !strings.HasPrefix(c.Editor.DefaultExtension, ".") || len(c.Editor.DefaultExtension) < 2 {
		return fmt.Errorf("default_extension must look like \".txt\", got %q", c.Editor.DefaultExtension)
	}
	if c.Canvas.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width must be positive, got %v", c.Canvas.StrokeWidth)
	}
	if c.Canvas.OvalSegments < 8 {
		return fmt.Errorf("oval_segments must be at least 8, got %d", c.Canvas.OvalSegments)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
