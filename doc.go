// Package gridpath finds shortest paths on 2D occupancy grids.
//
// 🚀 What is gridpath?
//
//	A small library and CLI for 4-connected grid search:
//		• Grid model: immutable free/blocked cells, bounds checks, YAML I/O
//		• Generation: seeded random grids with optional guaranteed corridor
//		• Analysis: connected free regions, BFS distance fields
//		• Search: A* with the Manhattan heuristic, deterministic tie-breaking
//		• Batch: many queries over one grid, bounded goroutine pool
//		• Observability: slog logging, Prometheus collectors, OpenTelemetry span
//
// Everything is organized under these subpackages:
//
//	gridgraph/   — Grid, Cell, Direction; NewGrid, Generate, Decode/LoadFile, components
//	astar/       — FindPath, FindPaths, Options, Result
//	metrics/     — Prometheus Collector implementing astar.Recorder
//	config/      — YAML run configuration used by the CLI
//	cmd/gridpath — `search`, `batch` and `version` commands
//
// Quick ASCII example (S start, G goal, # obstacle):
//
//	S . .        path: (0, 0) → (0, 1) → (0, 2)
//	# # .              → (1, 2) → (2, 2) → (2, 1) → (2, 0)
//	G . .        cost 6
//
// Moves cost 1 each, so the path cost equals the number of moves and the
// Manhattan heuristic is admissible and consistent: the first time the goal
// is popped from the frontier, its path is optimal.
//
//	go get github.com/katalvlaran/gridpath/astar
package gridpath
