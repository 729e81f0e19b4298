// Package astar_test provides runnable examples for FindPath and FindPaths.
package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleFindPath routes around a wall. The path and the moves that
// produce it are returned together.
//
//	S . . .
//	# # . #
//	G . . .
func ExampleFindPath() {
	g, _ := gridgraph.NewGrid([][]int{
		{0, 0, 0, 0},
		{1, 1, 0, 1},
		{0, 0, 0, 0},
	})

	res, err := astar.FindPath(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v cost=%d expanded=%d\n", res.Found, res.Cost, res.Expanded)
	fmt.Println(res.Path)
	fmt.Println(res.Moves)

	// Output:
	// found=true cost=6 expanded=6
	// [(0, 0) (0, 1) (0, 2) (1, 2) (2, 2) (2, 1) (2, 0)]
	// [right right down down left left]
}

// ExampleFindPath_unreachable shows that an enclosed goal is reported through
// Result.Found rather than an error.
func ExampleFindPath_unreachable() {
	g, _ := gridgraph.NewGrid([][]int{
		{0, 1, 0},
		{0, 1, 0},
	})

	res, err := astar.FindPath(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 2})
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found, "expanded:", res.Expanded)

	// Output:
	// err: <nil>
	// found: false expanded: 2
}

// ExampleFindPaths runs several queries over one shared grid.
func ExampleFindPaths() {
	g, _ := gridgraph.NewGrid([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	queries := []astar.Query{
		{Start: gridgraph.Cell{Row: 0, Col: 0}, Goal: gridgraph.Cell{Row: 2, Col: 2}},
		{Start: gridgraph.Cell{Row: 1, Col: 0}, Goal: gridgraph.Cell{Row: 1, Col: 2}},
		{Start: gridgraph.Cell{Row: 2, Col: 1}, Goal: gridgraph.Cell{Row: 2, Col: 1}},
	}

	results, err := astar.FindPaths(context.Background(), g, queries, astar.WithConcurrency(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, res := range results {
		fmt.Printf("%v -> %v: cost %d\n", queries[i].Start, queries[i].Goal, res.Cost)
	}

	// Output:
	// (0, 0) -> (2, 2): cost 4
	// (1, 0) -> (1, 2): cost 4
	// (2, 1) -> (2, 1): cost 0
}
