package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from prebuilt rows of values, stamping each cell
// with its (row, col) coordinates. The input is deep-copied to ensure
// immutability; ragged rows are preserved as-is, and zero rows is a valid
// (empty) grid.
// Complexity: O(R×C) time and memory.
func New[V comparable](values [][]V) *Grid[V] {
	data := make([][]Cell[V], len(values))
	for y, src := range values {
		row := make([]Cell[V], len(src))
		for x, v := range src {
			row[x] = Cell[V]{Row: y, Col: x, Value: v}
		}
		data[y] = row
	}

	return &Grid[V]{data: data}
}

// FromTextFunc constructs a Grid from a multi-line text block: one row per
// line, one cell per rune, converted to a value by conv. Row and column
// indices are zero-based, assigned by enumeration order of lines and runes.
// Lines are split on '\n' with a single trailing '\r' stripped, so CRLF
// input parses identically; a trailing newline does not add an empty row.
//
// Construction is all-or-nothing: the first conversion error aborts and is
// returned wrapped with the offending rune and its (row, col); no partial
// grid escapes.
// Complexity: O(len(text)) time and memory.
func FromTextFunc[V comparable](text string, conv func(r rune) (V, error)) (*Grid[V], error) {
	lines := splitLines(text)
	data := make([][]Cell[V], len(lines))
	for y, line := range lines {
		row := make([]Cell[V], 0, len(line))
		x := 0
		for _, r := range line {
			v, err := conv(r)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d): %q: %w", y, x, r, err)
			}
			row = append(row, Cell[V]{Row: y, Col: x, Value: v})
			x++
		}
		data[y] = row
	}

	return &Grid[V]{data: data}, nil
}

// FromText constructs a Grid[rune] in character-identity mode: every source
// rune becomes its cell's value unchanged. It cannot fail.
// Complexity: O(len(text)) time and memory.
func FromText(text string) *Grid[rune] {
	g, _ := FromTextFunc(text, func(r rune) (rune, error) { return r, nil })

	return g
}

// FromDigits constructs a Grid[int] in digit-parsing mode: every source rune
// must be a base-10 digit and becomes its integer value. Any other rune
// aborts construction with an error wrapping ErrNotDigit.
// Complexity: O(len(text)) time and memory.
func FromDigits(text string) (*Grid[int], error) {
	return FromTextFunc(text, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, ErrNotDigit
		}

		return int(r - '0'), nil
	})
}

// splitLines splits text on '\n', stripping one trailing '\r' per line and
// dropping the empty trailer produced by a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Get returns a copy of the cell at exactly (row, col), and true, when that
// position exists. It returns the zero Cell and false for a negative
// coordinate, a row beyond the row count, or a col beyond that row's own
// length — ragged rows are each measured individually.
// Complexity: O(1).
func (g *Grid[V]) Get(row, col int) (Cell[V], bool) {
	if row < 0 || row >= len(g.data) {
		return Cell[V]{}, false
	}
	if col < 0 || col >= len(g.data[row]) {
		return Cell[V]{}, false
	}

	return g.data[row][col], true
}

// Rows returns the grid's rows in row-major order as a deep copy, so the
// returned slices may be reordered or modified without affecting the grid.
// Complexity: O(R×C) time and memory.
func (g *Grid[V]) Rows() [][]Cell[V] {
	rows := make([][]Cell[V], len(g.data))
	for y, src := range g.data {
		row := make([]Cell[V], len(src))
		copy(row, src)
		rows[y] = row
	}

	return rows
}

// NumRows reports the number of rows in the grid.
// Complexity: O(1).
func (g *Grid[V]) NumRows() int {
	return len(g.data)
}
