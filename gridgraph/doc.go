// Package gridgraph models a rectangular 2D occupancy grid as an implicit
// 4-connected graph over its free cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int of binary occupancy values
//     (0 = free, 1 = blocked). It is deep-copied at construction and
//     immutable afterwards, so a single *Grid may be shared by any number
//     of concurrent readers.
//   - Cell is a (Row, Col) coordinate; Direction enumerates the four
//     orthogonal moves in the fixed order Up, Right, Down, Left.
//   - Generate builds seeded random grids; Decode/LoadFile read grids
//     from YAML.
//   - ConnectedComponents and Distances analyse free space with plain BFS
//     (useful as a ground truth for informed searches).
//
// Contract:
//
//   - InBounds(c) is true iff 0 ≤ c.Row < Height and 0 ≤ c.Col < Width.
//   - IsFree(c) requires InBounds(c). Asking for an out-of-bounds cell is a
//     programming error and panics; callers bounds-check first.
//
// Complexity:
//
//   - NewGrid, Generate, Decode:  O(W×H) time and memory.
//   - InBounds, IsFree, Index:    O(1).
//   - ConnectedComponents:        O(W×H×4), Memory: O(W×H).
//   - Distances:                  O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellValue: a cell value is neither 0 nor 1.
//   - ErrOutOfBounds / ErrBlockedCell: invalid BFS origin.
//   - ErrGenerateOptions: invalid Generate parameters.
//   - ErrGridFile: malformed YAML grid document.
package gridgraph
