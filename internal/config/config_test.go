package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 8, cfg.WeeklyHours)
	assert.Equal(t, 2, cfg.RawLevel)
	assert.Equal(t, 1.0, cfg.Weights.Must)
	assert.Equal(t, 0.5, cfg.Weights.NiceToHave)
	assert.Empty(t, cfg.Catalog.Paths)
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	content := `{
  "format": "json",
  "output": "report.json",
  "topN": 3,
  "weeklyHours": 10,
  "catalog": {
    "paths": ["catalog/*.yaml"]
  },
  "weights": {
    "must": 2.0,
    "niceToHave": 1.0
  }
}`
	require.NoError(t, os.WriteFile(".rolefitrc.json", []byte(content), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "report.json", cfg.Output)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, 10, cfg.WeeklyHours)
	assert.Equal(t, []string{"catalog/*.yaml"}, cfg.Catalog.Paths)
	assert.Equal(t, 2.0, cfg.Weights.Must)
	assert.Equal(t, 1.0, cfg.Weights.NiceToHave)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	content := `format: markdown
output: report.md
rawLevel: 3
`
	require.NoError(t, os.WriteFile(".rolefitrc.yaml", []byte(content), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "report.md", cfg.Output)
	assert.Equal(t, 3, cfg.RawLevel)
	// Values the file does not set keep their defaults.
	assert.Equal(t, 5, cfg.TopN)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Format:      "console",
			TopN:        5,
			WeeklyHours: 8,
			RawLevel:    2,
			Weights:     WeightsConfig{Must: 1.0, NiceToHave: 0.5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad format", func(c *Config) { c.Format = "xml" }, "invalid format"},
		{"json without output", func(c *Config) { c.Format = "json" }, "output file is required"},
		{"topN zero", func(c *Config) { c.TopN = 0 }, "topN must be at least 1"},
		{"weekly hours zero", func(c *Config) { c.WeeklyHours = 0 }, "weeklyHours must be at least 1"},
		{"raw level too high", func(c *Config) { c.RawLevel = 4 }, "rawLevel must be between 0 and 3"},
		{"raw level negative", func(c *Config) { c.RawLevel = -1 }, "rawLevel must be between 0 and 3"},
		{"must weight zero", func(c *Config) { c.Weights.Must = 0 }, "weights.must must be positive"},
		{"nice above must", func(c *Config) { c.Weights.NiceToHave = 2.0 }, "weights.niceToHave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(".rolefitrc.json", []byte(`{"format": "csv"}`), 0o644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
