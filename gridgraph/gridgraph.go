package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// occupancy values. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadCellValue
// (wrapped with the offending position) for values other than 0 or 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]uint8, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := values[r][c]
			if v != Free && v != Blocked {
				return nil, fmt.Errorf("%w: got %d at (%d, %d)", ErrBadCellValue, v, r, c)
			}
			cells[r*w+c] = uint8(v)
		}
	}

	return &Grid{height: h, width: w, cells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Size returns the number of cells (Height × Width).
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsFree reports whether the in-bounds cell c is free.
// Panics if c is out of bounds; callers must check InBounds first.
// Complexity: O(1).
func (g *Grid) IsFree(c Cell) bool {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("gridgraph: IsFree called with out-of-bounds cell %v on %dx%d grid", c, g.height, g.width))
	}
	return g.cells[c.Row*g.width+c.Col] == Free
}

// Index maps c to its row-major index: Row*Width + Col.
// The result is meaningful only for in-bounds cells.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// Cells returns a deep copy of the occupancy values as [][]int.
// Complexity: O(W×H).
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.height)
	for r := 0; r < g.height; r++ {
		row := make([]int, g.width)
		for c := 0; c < g.width; c++ {
			row[c] = int(g.cells[r*g.width+c])
		}
		out[r] = row
	}
	return out
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, v := range g.cells {
		if v == Free {
			n++
		}
	}
	return n
}
