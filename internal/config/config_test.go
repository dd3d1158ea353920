package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDebug, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDebug, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[window]
width = 1280

[canvas]
stroke_width = 3.0

[theme]
start_dark = true

[logging]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(1280), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
	assert.Equal(t, float32(3), cfg.Canvas.StrokeWidth)
	assert.True(t, cfg.Theme.StartDark)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ".txt", cfg.Editor.DefaultExtension)
}

func TestLoadEnvOverridesLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDebug, "1")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv(EnvLogLevel, "error")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"split offset", func(c *Config) { c.Window.SplitOffset = 1 }},
		{"extension without dot", func(c *Config) { c.Editor.DefaultExtension = "txt" }},
		{"stroke", func(c *Config) { c.Canvas.StrokeWidth = 0 }},
		{"oval segments", func(c *Config) { c.Canvas.OvalSegments = 3 }},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", DefaultPath())
}
