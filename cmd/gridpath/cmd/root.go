// Package cmd holds the cobra command tree of the gridpath CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/metrics"
)

// Version is stamped at build time with -ldflags "-X ...cmd.Version=...".
var Version = "0.1.0"

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitNoPath  = 2
)

// errNoPath makes Execute return ExitNoPath; the message is already printed.
var errNoPath = errors.New("no path found")

type rootOptions struct {
	configPath string
	logLevel   string
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errNoPath):
		return ExitNoPath
	default:
		fmt.Fprintln(stderr, "error:", err)
		return ExitInvalid
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "A* shortest paths on 4-connected occupancy grids",
		Long: `gridpath finds shortest 4-connected paths between free cells of an
occupancy grid using A* with the Manhattan heuristic.

Examples:
  gridpath search --size 20 --seed 7 --goal 19,19     # generated grid
  gridpath search --grid maze.yaml --start 0,0 --goal 4,6
  gridpath batch --config run.yaml                    # search.queries in parallel`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML run configuration")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")

	root.AddCommand(newSearchCmd(opts), newBatchCmd(opts), newVersionCmd())
	return root
}

// loadConfig reads --config and applies --log-level.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// newLogger writes text records to w at the configured level.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := config.ParseLevel(cfg.Log.Level) // validated by Load
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runMetrics is a private registry with a search collector for one CLI run.
type runMetrics struct {
	registry  *prometheus.Registry
	collector *metrics.Collector
}

func newRunMetrics() (*runMetrics, error) {
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}
	return &runMetrics{registry: reg, collector: col}, nil
}

// flush writes the registry to path when one is configured.
func (m *runMetrics) flush(path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	logger.Debug("metrics written", "path", path)
	return nil
}
