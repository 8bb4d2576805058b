// Package grid defines the core Cell and Grid types for the grid subpackage
// of github.com/katalvlaran/gridkit.
package grid

// Cell represents a single grid position and its payload.
// Row 0 is the top row; Col 0 is the left-most entry.
//
// Cell is a plain value: comparison with == is structural over
// (Row, Col, Value), so two cells are equal iff they occupy the same position
// AND carry the same value, and a Cell[V] with comparable V may be used
// directly as a map or set key.
type Cell[V comparable] struct {
	Row   int // row number within the grid
	Col   int // column number within the row
	Value V   // payload stored at (Row, Col)
}

// NewCell constructs a Cell at (row, col) carrying value.
// Coordinates are caller-supplied and not validated against any grid.
func NewCell[V comparable](row, col int, value V) Cell[V] {
	return Cell[V]{Row: row, Col: col, Value: value}
}

// Grid is an immutable, row-major 2D collection of cells.
// Rows are not required to share a length. Invariant: the cell stored at
// slot [y][x] always has Row == y and Col == x.
//
// Grid exclusively owns its cells; every query returns copies, so a caller
// can never mutate grid state through a result. A Grid is therefore safe for
// concurrent readers without synchronization.
type Grid[V comparable] struct {
	data [][]Cell[V]
}
