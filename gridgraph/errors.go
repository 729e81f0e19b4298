package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCellValue indicates an occupancy value other than Free or Blocked.
	ErrBadCellValue = errors.New("gridgraph: cell value must be 0 (free) or 1 (blocked)")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedCell indicates an operation that needs a free cell got a blocked one.
	ErrBlockedCell = errors.New("gridgraph: cell is blocked")
	// ErrGenerateOptions indicates invalid GenerateOptions.
	ErrGenerateOptions = errors.New("gridgraph: invalid generate options")
	// ErrGridFile indicates a malformed grid document.
	ErrGridFile = errors.New("gridgraph: malformed grid document")
)
