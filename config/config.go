// Package config loads the YAML run configuration used by cmd/gridpath:
// where the grid comes from, which searches to run, logging and metrics.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// MaxConfigFileSize bounds the config file read by Load (1MB).
const MaxConfigFileSize = 1024 * 1024

// ErrInvalidConfig is wrapped by every Load/Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GridConfig selects the grid source. File wins over Generate when set.
type GridConfig struct {
	File     string         `yaml:"file"`
	Generate GenerateConfig `yaml:"generate"`
}

// GenerateConfig mirrors gridgraph.GenerateOptions.
type GenerateConfig struct {
	Height              int     `yaml:"height"`
	Width               int     `yaml:"width"`
	ObstacleProbability float64 `yaml:"obstacle_probability"`
	Seed                int64   `yaml:"seed"`
	Corridor            bool    `yaml:"corridor"`
}

// SearchConfig holds the single search endpoints and the batch queries.
type SearchConfig struct {
	Start            gridgraph.Cell `yaml:"start"`
	Goal             gridgraph.Cell `yaml:"goal"`
	MaxExpansions    int            `yaml:"max_expansions"`
	LenientEndpoints bool           `yaml:"lenient_endpoints"`
	Concurrency      int            `yaml:"concurrency"`
	Queries          []astar.Query  `yaml:"queries"`
}

// LogConfig selects the slog level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig optionally names a Prometheus textfile written after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration: a seeded 10×10 grid with a
// free corridor, searched from (0,0) to (5,5).
func Default() Config {
	return Config{
		Grid: GridConfig{
			Generate: GenerateConfig{
				Height:              10,
				Width:               10,
				ObstacleProbability: 0.3,
				Seed:                42,
				Corridor:            true,
			},
		},
		Search: SearchConfig{
			Start: gridgraph.Cell{Row: 0, Col: 0},
			Goal:  gridgraph.Cell{Row: 5, Col: 5},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > MaxConfigFileSize {
		return Config{}, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidConfig, path, info.Size(), MaxConfigFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. It does not touch the filesystem; a
// missing grid file surfaces from BuildGrid.
func (c *Config) Validate() error {
	if c.Grid.File == "" {
		gen := c.Grid.Generate
		if gen.Height < 1 || gen.Width < 1 {
			return fmt.Errorf("%w: grid.generate dimensions %dx%d must be at least 1x1", ErrInvalidConfig, gen.Height, gen.Width)
		}
		if gen.ObstacleProbability < 0 || gen.ObstacleProbability > 1 {
			return fmt.Errorf("%w: grid.generate.obstacle_probability %v not in [0,1]", ErrInvalidConfig, gen.ObstacleProbability)
		}
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be non-negative", ErrInvalidConfig)
	}
	if c.Search.Concurrency < 0 {
		return fmt.Errorf("%w: search.concurrency must be non-negative", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to slog.Level; the empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level %q (want debug|info|warn|error)", ErrInvalidConfig, s)
	}
}

// BuildGrid loads Grid.File or generates a grid. Generated grids keep the
// configured start, goal and every query endpoint free when they are in bounds.
func (c *Config) BuildGrid() (*gridgraph.Grid, error) {
	if c.Grid.File != "" {
		return gridgraph.LoadFile(c.Grid.File)
	}

	gen := c.Grid.Generate
	opts := gridgraph.GenerateOptions{
		Height:              gen.Height,
		Width:               gen.Width,
		ObstacleProbability: gen.ObstacleProbability,
		Seed:                gen.Seed,
		Corridor:            gen.Corridor,
	}
	inBounds := func(cell gridgraph.Cell) bool {
		return cell.Row >= 0 && cell.Row < gen.Height && cell.Col >= 0 && cell.Col < gen.Width
	}
	endpoints := []gridgraph.Cell{c.Search.Start, c.Search.Goal}
	for _, q := range c.Search.Queries {
		endpoints = append(endpoints, q.Start, q.Goal)
	}
	for _, cell := range endpoints {
		if inBounds(cell) {
			opts.Keep = append(opts.Keep, cell)
		}
	}
	return gridgraph.Generate(opts)
}

// SearchOptions maps the search section onto astar options.
func (c *Config) SearchOptions(logger *slog.Logger, rec astar.Recorder) []astar.Option {
	opts := []astar.Option{
		astar.WithMaxExpansions(c.Search.MaxExpansions),
		astar.WithConcurrency(c.Search.Concurrency),
		astar.WithLogger(logger),
		astar.WithRecorder(rec),
	}
	if c.Search.LenientEndpoints {
		opts = append(opts, astar.WithLenientEndpoints())
	}
	return opts
}
