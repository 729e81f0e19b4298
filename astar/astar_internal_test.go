package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestFrontier_FIFOOnTies verifies (f, seq) ordering.
func TestFrontier_FIFOOnTies(t *testing.T) {
	pq := frontier{}
	heap.Init(&pq)
	heap.Push(&pq, entry{f: 5, seq: 0, node: 0})
	heap.Push(&pq, entry{f: 3, seq: 1, node: 1})
	heap.Push(&pq, entry{f: 5, seq: 2, node: 2})
	heap.Push(&pq, entry{f: 3, seq: 3, node: 3})
	heap.Push(&pq, entry{f: 4, seq: 4, node: 4})

	var order []int32
	for pq.Len() > 0 {
		order = append(order, heap.Pop(&pq).(entry).node)
	}
	assert.Equal(t, []int32{1, 3, 4, 0, 2}, order)
}

// TestRunner_SkipsStaleEntries plants a superseded entry for (0,1) and
// checks that it is popped but never expanded.
//
// Grid: 0 0 1, goal (0,2) is blocked (lenient) so the frontier drains.
func TestRunner_SkipsStaleEntries(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{0, 0, 1}})
	require.NoError(t, err)

	r := &runner{
		grid:     g,
		goal:     gridgraph.Cell{Row: 0, Col: 2},
		explored: make([]bool, g.Size()),
		best:     make([]int32, g.Size()),
	}
	r.init(gridgraph.Cell{Row: 0, Col: 0})
	mid := gridgraph.Cell{Row: 0, Col: 1}
	r.push(node{cell: mid, parent: 0, action: gridgraph.Right, g: 5, depth: 1}) // becomes stale
	r.push(node{cell: mid, parent: 0, action: gridgraph.Right, g: 1, depth: 1})
	require.Equal(t, int32(2), r.best[g.Index(mid)])

	res := r.process()
	assert.False(t, res.Found)
	assert.False(t, res.Truncated)
	assert.Equal(t, 2, res.Expanded, "stale entry must not be expanded")
	assert.Equal(t, 3, res.Generated)
	assert.Equal(t, noNode, r.best[g.Index(mid)])
}

// TestRunner_Reconstruct checks parent-index walking and move recording.
func TestRunner_Reconstruct(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	r := &runner{grid: g, best: make([]int32, g.Size())}
	r.nodes = []node{
		{cell: gridgraph.Cell{Row: 0, Col: 0}, parent: noNode},
		{cell: gridgraph.Cell{Row: 0, Col: 1}, parent: 0, action: gridgraph.Right, g: 1, depth: 1},
		{cell: gridgraph.Cell{Row: 1, Col: 1}, parent: 1, action: gridgraph.Down, g: 2, depth: 2},
	}

	res := r.reconstruct(2)
	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}, res.Path)
	assert.Equal(t, []gridgraph.Direction{gridgraph.Right, gridgraph.Down}, res.Moves)
	assert.Equal(t, 2, res.Cost)
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b gridgraph.Cell
		want int
	}{
		{gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 0}, 0},
		{gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 3, Col: 4}, 7},
		{gridgraph.Cell{Row: 5, Col: 1}, gridgraph.Cell{Row: 2, Col: 6}, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Manhattan(tc.a, tc.b))
		assert.Equal(t, tc.want, Manhattan(tc.b, tc.a))
	}
}
