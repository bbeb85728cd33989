// Package config loads algorace settings from YAML.
//
// The file lives at $XDG_CONFIG_HOME/algotrace/config.yaml (defaults to
// ~/.config/algotrace/config.yaml) unless --config names another path.
// Fields left out of the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algotrace/internal/logging"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Race controls how algorace paces a race.
type Race struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	MaxTicks     int           `yaml:"max_ticks"`
}

// Input controls randomly generated arrays.
type Input struct {
	Size int   `yaml:"size"`
	Min  int   `yaml:"min"`
	Max  int   `yaml:"max"`
	Seed int64 `yaml:"seed"` // 0 means seed from the clock
}

// Graph controls randomly generated graphs.
type Graph struct {
	Vertices int `yaml:"vertices"`
}

// Config is the full settings document.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Race     Race   `yaml:"race"`
	Input    Input  `yaml:"input"`
	Graph    Graph  `yaml:"graph"`
}

// Default mirrors the pacing and sizes of the interactive visualizer.
func Default() Config {
	return Config{
		LogLevel: logging.LevelWarn,
		Race: Race{
			TickInterval: 50 * time.Millisecond,
			MaxTicks:     100_000,
		},
		Input: Input{Size: 10, Min: 5, Max: 100},
		Graph: Graph{Vertices: 6},
	}
}

// DefaultPath returns the config location, respecting XDG_CONFIG_HOME.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "algotrace", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "algotrace", "config.yaml")
}

// Load reads path (DefaultPath when empty) over the defaults and validates
// the result. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no command could run with.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch {
	case c.Race.TickInterval < 0:
		return fmt.Errorf("%w: race.tick_interval %s is negative", ErrInvalid, c.Race.TickInterval)
	case c.Race.MaxTicks <= 0:
		return fmt.Errorf("%w: race.max_ticks must be positive, got %d", ErrInvalid, c.Race.MaxTicks)
	case c.Input.Size <= 0:
		return fmt.Errorf("%w: input.size must be positive, got %d", ErrInvalid, c.Input.Size)
	case c.Input.Max < c.Input.Min:
		return fmt.Errorf("%w: input range [%d, %d] is inverted", ErrInvalid, c.Input.Min, c.Input.Max)
	case c.Graph.Vertices <= 0:
		return fmt.Errorf("%w: graph.vertices must be positive, got %d", ErrInvalid, c.Graph.Vertices)
	}
	return nil
}
