package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-tabs/augment"
	"github.com/RyanBlaney/sonido-tabs/corpus"
	"github.com/RyanBlaney/sonido-tabs/logging"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// BuildConfig configures a corpus build
type BuildConfig struct {
	// Input selection
	Extension string `json:"extension"` // tablature file suffix, e.g. ".txt"

	// Augmentation
	AugmentationsPerRow int    `json:"augmentations_per_row"`
	MinShift            int    `json:"min_shift"`
	MaxShift            int    `json:"max_shift"`
	Seed                uint64 `json:"seed"` // 0 = unseeded, differs per run

	// Output
	Format corpus.Format `json:"format"`

	// Logging
	LogLevel string `json:"log_level"`
}

// DefaultBuildConfig returns the defaults: .txt files, two unseeded
// transpositions per file over [1, 11], JSON output.
func DefaultBuildConfig() *BuildConfig {
	return &BuildConfig{
		Extension:           ".txt",
		AugmentationsPerRow: augment.DefaultPerSample,
		MinShift:            augment.MinShift,
		MaxShift:            augment.MaxShift,
		Seed:                0,
		Format:              corpus.FormatJSON,
		LogLevel:            "info",
	}
}

// LoadBuildConfig reads a JSON file and overlays it on the defaults.
// Keys missing from the file keep their default values.
func LoadBuildConfig(path string) (*BuildConfig, error) {
	cfg := DefaultBuildConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Validate checks the config and normalizes the extension and format
func (c *BuildConfig) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("%w: extension must not be empty", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	if c.AugmentationsPerRow < 0 {
		return fmt.Errorf("%w: augmentations_per_row must be >= 0, got %d", ErrInvalidConfig, c.AugmentationsPerRow)
	}
	if err := augment.ValidateRange(c.MinShift, c.MaxShift); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	format, err := corpus.ParseFormat(string(c.Format))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.Format = format

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, defaulting to info
func (c *BuildConfig) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}

// ShiftSource builds the random shift source described by the config
func (c *BuildConfig) ShiftSource() (augment.ShiftSource, error) {
	return augment.NewRandomShiftSource(c.Seed, c.MinShift, c.MaxShift)
}
