package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Run search.queries from the config in parallel",
		Long: `Run every search.queries entry of the config against one grid.
Prints one summary line per query, in query order. Queries without a
path are reported, not treated as failures; any invalid query fails
the whole batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, root)
		},
	}
}

func runBatch(cmd *cobra.Command, root *rootOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Search.Queries) == 0 {
		return errors.New("batch: search.queries is empty")
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	m, err := newRunMetrics()
	if err != nil {
		return err
	}
	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}

	results, err := astar.FindPaths(cmd.Context(), g, cfg.Search.Queries, cfg.SearchOptions(logger, m.collector)...)
	if err != nil {
		return err
	}
	if err := m.flush(cfg.Metrics.Textfile, logger); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	found := 0
	for i, res := range results {
		q := cfg.Search.Queries[i]
		switch {
		case res.Found:
			found++
			fmt.Fprintf(out, "query %d: %s -> %s: cost %d, expanded %d\n", i, q.Start, q.Goal, res.Cost, res.Expanded)
		case res.Truncated:
			fmt.Fprintf(out, "query %d: %s -> %s: truncated, expanded %d\n", i, q.Start, q.Goal, res.Expanded)
		default:
			fmt.Fprintf(out, "query %d: %s -> %s: no path, expanded %d\n", i, q.Start, q.Goal, res.Expanded)
		}
	}
	fmt.Fprintf(out, "%d/%d queries found a path\n", found, len(results))
	return nil
}
