// SPDX-License-Identifier: MIT

// Package config loads the lvcluster run configuration from YAML and builds
// the zap logger it describes.
//
// Loading starts from Default, overlays the YAML file (unknown keys are
// rejected) and leaves flag overrides to the caller before Validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvcluster/hamming"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Clustering modes.
const (
	ModeWeighted = "weighted"
	ModeHamming  = "hamming"
)

var (
	// ErrInvalidMode indicates a mode other than ModeWeighted or ModeHamming.
	ErrInvalidMode = errors.New("config: invalid mode")

	// ErrInvalidClusters indicates a cluster count below one in weighted mode.
	ErrInvalidClusters = errors.New("config: clusters must be at least 1")

	// ErrInvalidDistance indicates a negative distance threshold in hamming mode.
	ErrInvalidDistance = errors.New("config: max_distance must not be negative")

	// ErrMissingInput indicates that no input file was configured.
	ErrMissingInput = errors.New("config: input file is required")
)

// Config is the full run configuration.
type Config struct {
	// Mode selects the clustering strategy: "weighted" or "hamming".
	Mode string `yaml:"mode"`

	// Input is the dataset path.
	Input string `yaml:"input"`

	// Clusters is the target group count k for weighted mode.
	Clusters int `yaml:"clusters"`

	// MaxDistance is the merge threshold for hamming mode.
	MaxDistance int `yaml:"max_distance"`

	// Linkage is "complete" or "single" for hamming mode.
	Linkage string `yaml:"linkage"`

	// MetricsFile, when set, receives a Prometheus text snapshot after the run.
	MetricsFile string `yaml:"metrics_file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`

	// Development switches to the console encoder with caller and stack traces.
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:        ModeWeighted,
		Clusters:    4,
		MaxDistance: 3,
		Linkage:     hamming.LinkageComplete.String(),
		Log:         LogConfig{Level: "info"},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Unknown keys are an error; an empty
// document leaves cfg untouched.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks the fields the selected mode depends on.
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	switch c.Mode {
	case ModeWeighted:
		if c.Clusters < 1 {
			return fmt.Errorf("clusters=%d: %w", c.Clusters, ErrInvalidClusters)
		}
	case ModeHamming:
		if c.MaxDistance < 0 {
			return fmt.Errorf("max_distance=%d: %w", c.MaxDistance, ErrInvalidDistance)
		}
		if _, err := hamming.ParseLinkage(c.Linkage); err != nil {
			return err
		}
	default:
		return fmt.Errorf("mode=%q: %w", c.Mode, ErrInvalidMode)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}

	return nil
}

// NewLogger builds the logger described by lc.
func NewLogger(lc LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
