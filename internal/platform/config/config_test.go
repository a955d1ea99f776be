package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quotecard", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, DefaultCanvasSize, cfg.Canvas.Size)
	assert.True(t, cfg.Raster.Enabled)
	assert.NotEmpty(t, cfg.Fonts.Candidates)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_CANVAS_SIZE", "640")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_RASTER_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Canvas.Size)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Raster.Enabled)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("does-not-exist")

	require.NoError(t, err)
	assert.Equal(t, "quotecard", cfg.App.Name)
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{
			name:     "canvas size too small",
			mutate:   func(c *Config) { c.Canvas.Size = 10 },
			expected: "canvas.size must be at least 64",
		},
		{
			name:     "canvas size missing",
			mutate:   func(c *Config) { c.Canvas.Size = 0 },
			expected: "canvas.size is required",
		},
		{
			name:     "unknown log level",
			mutate:   func(c *Config) { c.Log.Level = "verbose" },
			expected: "log.level must be one of",
		},
		{
			name:     "unknown log format",
			mutate:   func(c *Config) { c.Log.Format = "xml" },
			expected: "log.format must be one of",
		},
		{
			name:     "empty output dir",
			mutate:   func(c *Config) { c.Output.Dir = "" },
			expected: "output.dir is required",
		},
		{
			name:     "unknown environment",
			mutate:   func(c *Config) { c.App.Environment = "staging" },
			expected: "app.environment must be one of",
		},
		{
			name:     "file logging without path",
			mutate:   func(c *Config) { c.Log.File.Enabled = true; c.Log.File.Path = "" },
			expected: "log.file.path is required when",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
