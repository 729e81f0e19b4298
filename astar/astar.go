package astar

import (
	"container/heap"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// noNode marks "no parent" in the arena and "no pending node" in the
// reachability index.
const noNode int32 = -1

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the heuristic used by
// FindPath. It never overestimates the 4-connected step distance.
func Manhattan(a, b gridgraph.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FindPath computes a minimum-step path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start must be in bounds (ErrStartOutOfBounds).
//  4. goal must be in bounds (ErrGoalOutOfBounds).
//  5. start and goal must be free unless WithLenientEndpoints (ErrBlockedEndpoint).
//
// The three endpoint errors all satisfy errors.Is(err, ErrInvalidEndpoint).
// An unreachable goal is not an error: Result.Found is false.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of free cells.
//   - Space: O(W×H).
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	res, err := findPath(g, start, goal, cfg)
	elapsed := time.Since(began)

	outcome := classify(res, err)
	cfg.Recorder.ObserveSearch(outcome, res.Expanded, len(res.Path), elapsed)
	cfg.Logger.Debug("astar search finished",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.String("outcome", string(outcome)),
		slog.Int("expanded", res.Expanded),
		slog.Int("path_len", len(res.Path)),
		slog.Duration("elapsed", elapsed),
	)
	return res, err
}

func classify(res Result, err error) Outcome {
	switch {
	case err != nil:
		return OutcomeInvalid
	case res.Found:
		return OutcomeFound
	case res.Truncated:
		return OutcomeTruncated
	default:
		return OutcomeNotFound
	}
}

func findPath(g *gridgraph.Grid, start, goal gridgraph.Cell, cfg Options) (Result, error) {
	// 2) Validate options and request before any search work.
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v on %dx%d grid", ErrStartOutOfBounds, start, g.Height(), g.Width())
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v on %dx%d grid", ErrGoalOutOfBounds, goal, g.Height(), g.Width())
	}
	if !cfg.LenientEndpoints {
		if !g.IsFree(start) {
			return Result{}, fmt.Errorf("%w: start %v", ErrBlockedEndpoint, start)
		}
		if !g.IsFree(goal) {
			return Result{}, fmt.Errorf("%w: goal %v", ErrBlockedEndpoint, goal)
		}
	}

	// 3) Degenerate request: nothing to search.
	if start == goal {
		return Result{
			Found:     true,
			Path:      []gridgraph.Cell{start},
			Moves:     []gridgraph.Direction{},
			Generated: 1,
		}, nil
	}

	// 4) Per-call state; nothing here outlives the call.
	r := &runner{
		grid:          g,
		goal:          goal,
		maxExpansions: cfg.MaxExpansions,
		nodes:         make([]node, 0, 64),
		frontier:      make(frontier, 0, 64),
		explored:      make([]bool, g.Size()),
		best:          make([]int32, g.Size()),
	}
	r.init(start)

	return r.process(), nil
}

// node is one explored state. Nodes are stored in runner.nodes and refer to
// their parent by arena index (noNode for the root).
type node struct {
	cell   gridgraph.Cell
	parent int32
	action gridgraph.Direction // move that produced this node; meaningless for the root
	g      int                 // steps from start
	depth  int
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid          *gridgraph.Grid // read-only
	goal          gridgraph.Cell
	maxExpansions int

	nodes    []node   // arena
	frontier frontier // min-heap over (f, seq)
	explored []bool   // cell index → expanded
	best     []int32  // reachability index: cell index → best pending node, or noNode
	seq      uint64
	expanded int
}

// init clears the reachability index and pushes the root node for start.
func (r *runner) init(start gridgraph.Cell) {
	for i := range r.best {
		r.best[i] = noNode
	}
	heap.Init(&r.frontier)
	r.push(node{cell: start, parent: noNode})
}

// push stores n in the arena, makes it the best pending node for its cell
// and schedules it with priority f = g + h.
func (r *runner) push(n node) {
	id := int32(len(r.nodes))
	r.nodes = append(r.nodes, n)
	r.best[r.grid.Index(n.cell)] = id
	heap.Push(&r.frontier, entry{
		f:    n.g + Manhattan(n.cell, r.goal),
		seq:  r.seq,
		node: id,
	})
	r.seq++
}

// process is the main A* loop.
//
// Loop termination conditions:
//
//   - The goal is popped (path found).
//   - The frontier empties (goal unreachable).
//   - MaxExpansions is reached (truncated).
func (r *runner) process() Result {
	for r.frontier.Len() > 0 {
		// 1) Pop the lowest-f entry; ties come out in insertion order.
		e := heap.Pop(&r.frontier).(entry)
		n := r.nodes[e.node]
		ci := r.grid.Index(n.cell)

		// 2) A cheaper node for this cell was pushed later: stale entry.
		if r.best[ci] != e.node {
			continue
		}
		r.best[ci] = noNode

		// 3) Goal test happens on pop, which is what makes the path optimal.
		if n.cell == r.goal {
			return r.reconstruct(e.node)
		}

		if r.maxExpansions > 0 && r.expanded >= r.maxExpansions {
			return Result{Expanded: r.expanded, Generated: len(r.nodes), Truncated: true}
		}

		// 4) Expand: settle the cell and relax its neighbours in Up, Right, Down, Left order.
		r.explored[ci] = true
		r.expanded++
		for _, d := range gridgraph.Directions {
			next := n.cell.Step(d)
			if !r.grid.InBounds(next) || !r.grid.IsFree(next) {
				continue
			}
			ni := r.grid.Index(next)
			if r.explored[ni] {
				continue
			}
			g := n.g + 1
			if b := r.best[ni]; b != noNode && g >= r.nodes[b].g {
				continue
			}
			r.push(node{cell: next, parent: e.node, action: d, g: g, depth: n.depth + 1})
		}
	}

	return Result{Expanded: r.expanded, Generated: len(r.nodes)}
}

// reconstruct walks parent indices from the goal node to the root and
// returns the reversed, detached path.
func (r *runner) reconstruct(goal int32) Result {
	depth := r.nodes[goal].depth
	path := make([]gridgraph.Cell, depth+1)
	moves := make([]gridgraph.Direction, depth)
	for at := goal; at != noNode; at = r.nodes[at].parent {
		n := r.nodes[at]
		path[n.depth] = n.cell
		if n.depth > 0 {
			moves[n.depth-1] = n.action
		}
	}

	return Result{
		Found:     true,
		Path:      path,
		Moves:     moves,
		Cost:      r.nodes[goal].g,
		Expanded:  r.expanded,
		Generated: len(r.nodes),
	}
}
