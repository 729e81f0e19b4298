package gridgraph

import "fmt"

// Unreachable marks cells with no free-space route from the BFS origin.
const Unreachable = -1

// ConnectedComponents finds all 4-connected regions of free cells.
// Components are discovered in row-major order of their first cell, and
// each component lists its cells in BFS order from that cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell

	for i0, v := range g.cells {
		if v != Free || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.CellAt(queue[qi])
			comp = append(comp, u)
			for _, d := range Directions {
				v := u.Step(d)
				if !g.InBounds(v) || !g.IsFree(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Distances runs an uninformed breadth-first search from the free cell
// from and returns the step count to every cell, indexed row-major.
// Blocked and unreachable cells hold Unreachable.
//
// Returns ErrOutOfBounds or ErrBlockedCell for an invalid origin.
//
// Time:   O(W·H·4).
// Memory: O(W·H).
func (g *Grid) Distances(from Cell) ([]int, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	if !g.IsFree(from) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedCell, from)
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Unreachable
	}
	src := g.Index(from)
	dist[src] = 0
	queue := []int{src}

	for qi := 0; qi < len(queue); qi++ {
		ui := queue[qi]
		u := g.CellAt(ui)
		for _, d := range Directions {
			v := u.Step(d)
			if !g.InBounds(v) || !g.IsFree(v) {
				continue
			}
			vi := g.Index(v)
			if dist[vi] == Unreachable {
				dist[vi] = dist[ui] + 1
				queue = append(queue, vi)
			}
		}
	}
	return dist, nil
}

// Connected reports whether free cells a and b share a free-space region.
// Invalid or blocked endpoints are never connected.
func (g *Grid) Connected(a, b Cell) bool {
	dist, err := g.Distances(a)
	if err != nil || !g.InBounds(b) {
		return false
	}
	return dist[g.Index(b)] != Unreachable
}
