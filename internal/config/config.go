// Package config loads the mazegen configuration file: generation
// defaults, logging, the run archive and metric export.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/katalvlaran/lvmaze/internal/logger"
	"github.com/katalvlaran/lvmaze/internal/metrics"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/store"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the whole mazegen.yaml document.
type Config struct {
	Generate maze.Config    `yaml:"generate"`
	Logging  logger.Config  `yaml:"logging"`
	Store    store.Config   `yaml:"store"`
	Metrics  metrics.Config `yaml:"metrics"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Generate: maze.DefaultConfig(),
		Logging:  logger.DefaultConfig(),
		Store:    store.DefaultConfig("data/mazegen.db"),
		Metrics:  metrics.Config{TextfilePath: "metrics/lvmaze.prom"},
	}
}

// Load reads path over the defaults, then applies LOG_* overrides. A
// missing file is not an error; an unreadable or malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	cfg.Logging = cfg.Logging.ApplyEnv()
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Generate.Validate(); err != nil {
		return fmt.Errorf("%w: generate: %w", ErrInvalid, err)
	}
	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("%w: store: %w", ErrInvalid, err)
	}
	if c.Metrics.Enabled && c.Metrics.TextfilePath == "" {
		return fmt.Errorf("%w: metrics: textfile_path is empty", ErrInvalid)
	}
	return nil
}

// Write saves c as YAML, for "mazegen config init".
func (c Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
