package gridgraph

import "fmt"

// Occupancy values accepted by NewGrid.
const (
	Free    = 0
	Blocked = 1
)

// Cell is a (Row, Col) coordinate. Identity is by value.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// String formats the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Step returns the neighbouring cell in direction d. It does not bounds-check.
func (c Cell) Step(d Direction) Cell {
	o := d.Offset()
	return Cell{Row: c.Row + o[0], Col: c.Col + o[1]}
}

// Direction is one of the four orthogonal moves.
type Direction int

// The declaration order is the neighbour generation order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every move in generation order: Up, Right, Down, Left.
var Directions = [4]Direction{Up, Right, Down, Left}

// directionOffsets holds {dRow, dCol} per Direction.
var directionOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

var directionNames = [4]string{"up", "right", "down", "left"}

// Offset returns the {dRow, dCol} pair of d.
func (d Direction) Offset() [2]int {
	return directionOffsets[d]
}

func (d Direction) String() string {
	if d < Up || d > Left {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Grid is an immutable rectangular occupancy map.
// cells is stored row-major: cells[row*width+col].
type Grid struct {
	height, width int
	cells         []uint8
}
