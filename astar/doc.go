// Package astar finds minimum-cost paths on a gridgraph.Grid with the A*
// algorithm and a Manhattan-distance heuristic.
//
// Overview:
//
//   - Moves are the four orthogonal steps (up, right, down, left), each of
//     cost 1. Manhattan distance is admissible and consistent for this
//     move set, so the first time a cell is expanded its cost is final and
//     the returned path is optimal.
//   - Nodes live in a per-search arena and refer to their parent by index;
//     path reconstruction walks indices back to the root and reverses.
//   - The frontier is a binary heap ordered by f = g + h, then by insertion
//     sequence, so equal-f entries pop first-in first-out. Combined with the
//     fixed neighbour order this makes every search fully deterministic.
//   - Improvements use lazy deletion: a cheaper rediscovery is pushed as a
//     new entry, and older entries for the same cell are recognised as stale
//     through the reachability index and skipped when popped.
//
// Result semantics:
//
//   - A path is found: Result.Found is true and Result.Path runs from start
//     to goal inclusive.
//   - The goal is unreachable: Result.Found is false and err is nil. Not
//     finding a path is an ordinary outcome, never an error.
//   - start == goal: Path is [start]; nothing is expanded.
//   - Invalid requests (nil grid, out-of-bounds or blocked endpoints, bad
//     options) return a sentinel error before any search work.
//
// Options:
//
//   - WithMaxExpansions(n): stop after n expansions; Result.Truncated is set.
//   - WithLenientEndpoints(): accept blocked endpoints instead of rejecting them.
//   - WithLogger(l): slog logger for per-search debug records.
//   - WithRecorder(r): metrics sink, see package metrics.
//   - WithConcurrency(n): worker limit for FindPaths.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H free cells in the worst case.
//   - Space: O(W×H) for the explored set and reachability index, plus the arena.
//
// Thread safety:
//
//   - FindPath keeps all mutable state local to the call; a *gridgraph.Grid is
//     immutable and may be searched by many goroutines at once. FindPaths does
//     exactly that for a batch of queries.
package astar
