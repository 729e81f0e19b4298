package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

type searchOptions struct {
	start         string
	goal          string
	gridFile      string
	seed          int64
	size          int
	maxExpansions int
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one A* search and print the path",
		Long: `Run one A* search. Flags override the matching config fields.

Exits 0 when a path is found, 2 when none exists (or the expansion
limit was reached first) and 1 on invalid input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.start, "start", "", "start cell as row,col")
	f.StringVar(&opts.goal, "goal", "", "goal cell as row,col")
	f.StringVar(&opts.gridFile, "grid", "", "grid YAML file (overrides generation)")
	f.Int64Var(&opts.seed, "seed", 0, "generator seed")
	f.IntVar(&opts.size, "size", 0, "generate a size×size grid")
	f.IntVar(&opts.maxExpansions, "max-expansions", 0, "expansion limit, 0 means unlimited")
	return cmd
}

func runSearch(cmd *cobra.Command, root *rootOptions, opts *searchOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("start") {
		if cfg.Search.Start, err = parseCell(opts.start); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}
	if f.Changed("goal") {
		if cfg.Search.Goal, err = parseCell(opts.goal); err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
	}
	if f.Changed("grid") {
		cfg.Grid.File = opts.gridFile
	}
	if f.Changed("seed") {
		cfg.Grid.Generate.Seed = opts.seed
	}
	if f.Changed("size") {
		cfg.Grid.Generate.Height, cfg.Grid.Generate.Width = opts.size, opts.size
	}
	if f.Changed("max-expansions") {
		cfg.Search.MaxExpansions = opts.maxExpansions
	}
	if err := cfg.Validate(); err != nil {
		return err
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
	logger.Info("grid ready", "height", g.Height(), "width", g.Width(), "free", g.FreeCount())

	res, err := astar.FindPath(g, cfg.Search.Start, cfg.Search.Goal, cfg.SearchOptions(logger, m.collector)...)
	if err != nil {
		return err
	}
	if err := m.flush(cfg.Metrics.Textfile, logger); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		printNoPath(out, res)
		return errNoPath
	}
	printPath(out, res)
	return nil
}

func printPath(w io.Writer, res astar.Result) {
	fmt.Fprintf(w, "path found: %d cells, cost %d, expanded %d\n", len(res.Path), res.Cost, res.Expanded)
	for i, move := range res.Moves {
		fmt.Fprintf(w, "step %d: %s %s\n", i+1, res.Path[i], move)
	}
}

func printNoPath(w io.Writer, res astar.Result) {
	if res.Truncated {
		fmt.Fprintf(w, "no path found: expansion limit reached after %d expansions\n", res.Expanded)
		return
	}
	fmt.Fprintf(w, "no path found: expanded %d\n", res.Expanded)
}

// parseCell reads "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: col: %w", s, err)
	}
	return gridgraph.Cell{Row: r, Col: c}, nil
}
