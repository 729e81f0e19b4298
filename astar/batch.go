package astar

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var tracer = otel.Tracer("github.com/katalvlaran/gridpath/astar")

// FindPaths runs FindPath for every query over the shared, read-only grid g.
// At most Options.Concurrency searches run at once; each owns its own
// frontier, explored set, reachability index and arena.
//
// results[i] belongs to queries[i]. The first invalid query cancels the
// remaining ones and is returned wrapped with its index; a cancelled ctx
// returns ctx.Err(). In both cases no results are returned.
func FindPaths(ctx context.Context, g *gridgraph.Grid, queries []Query, opts ...Option) ([]Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	ctx, span := tracer.Start(ctx, "astar.FindPaths", trace.WithAttributes(
		attribute.Int("gridpath.queries", len(queries)),
		attribute.Int("gridpath.grid.height", g.Height()),
		attribute.Int("gridpath.grid.width", g.Width()),
	))
	defer span.End()

	results := make([]Result, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())
	for i, q := range queries {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := FindPath(g, q.Start, q.Goal, opts...)
			if err != nil {
				return fmt.Errorf("astar: query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	found := 0
	for _, res := range results {
		if res.Found {
			found++
		}
	}
	span.SetAttributes(attribute.Int("gridpath.found", found))
	cfg.Logger.Debug("astar batch finished",
		slog.Int("queries", len(queries)),
		slog.Int("found", found),
		slog.Int("workers", cfg.workers()),
	)
	return results, nil
}
