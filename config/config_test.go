package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tabs/config"
	"github.com/RyanBlaney/sonido-tabs/corpus"
	"github.com/RyanBlaney/sonido-tabs/logging"
)

func TestDefaultBuildConfig(t *testing.T) {
	cfg := config.DefaultBuildConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ".txt", cfg.Extension)
	assert.Equal(t, 2, cfg.AugmentationsPerRow)
	assert.Equal(t, 1, cfg.MinShift)
	assert.Equal(t, 11, cfg.MaxShift)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, corpus.FormatJSON, cfg.Format)
	assert.Equal(t, logging.InfoLevel, cfg.Level())
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := config.DefaultBuildConfig()
	cfg.Extension = "tab"
	cfg.Format = "CSV"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".tab", cfg.Extension)
	assert.Equal(t, corpus.FormatCSV, cfg.Format)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*config.BuildConfig){
		"empty extension":   func(c *config.BuildConfig) { c.Extension = "" },
		"negative augments": func(c *config.BuildConfig) { c.AugmentationsPerRow = -1 },
		"zero shift":        func(c *config.BuildConfig) { c.MinShift = 0 },
		"shift twelve":      func(c *config.BuildConfig) { c.MaxShift = 12 },
		"inverted range":    func(c *config.BuildConfig) { c.MinShift, c.MaxShift = 8, 3 },
		"unknown format":    func(c *config.BuildConfig) { c.Format = "xml" },
		"unknown log level": func(c *config.BuildConfig) { c.LogLevel = "chatty" },
	}
	for name, mutate := range cases {
		cfg := config.DefaultBuildConfig()
		mutate(cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, name)
	}
}

func TestLoadBuildConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 9, "format": "csv", "augmentations_per_row": 4}`), 0o644))

	cfg, err := config.LoadBuildConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, corpus.FormatCSV, cfg.Format)
	assert.Equal(t, 4, cfg.AugmentationsPerRow)
	assert.Equal(t, ".txt", cfg.Extension, "unset keys keep defaults")
}

func TestLoadBuildConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.LoadBuildConfig(filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"seed": "x"`), 0o644))
	_, err = config.LoadBuildConfig(bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestShiftSource_Seeded(t *testing.T) {
	cfg := config.DefaultBuildConfig()
	cfg.Seed = 3
	a, err := cfg.ShiftSource()
	require.NoError(t, err)
	b, err := cfg.ShiftSource()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.NextShift(), b.NextShift())
	}
}
