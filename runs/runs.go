// Package runs extracts contiguous runs of digit cells from a Grid[rune] and
// answers neighborhood questions about them: which cells border a run, whether
// any bordering cell matches a predicate, and which runs share a given marker
// cell.
//
// A Run never spans rows; Collect gathers maximal horizontal digit sequences
// in row-major order. Neighborhoods are computed with Grid.PeekAll at offset
// 1 and deduplicated here — the Grid itself is deliberately
// duplicate-permitting, so the overlay owns the dedup.
package runs

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrNotNumeric is returned by Run.Value when a member cell does not carry a
// base-10 digit. Collect never produces such a run; only hand-built ones can
// trip this.
var ErrNotNumeric = errors.New("runs: run contains a non-digit cell")

// Run is an ordered, non-empty sequence of horizontally contiguous digit
// cells from a single grid row. Runs are values: copy freely, never mutate.
type Run struct {
	cells []grid.Cell[rune]
}

// NewRun builds a Run over the given cells. The cells are copied; no
// contiguity validation is performed, mirroring cell construction.
func NewRun(cells []grid.Cell[rune]) Run {
	own := make([]grid.Cell[rune], len(cells))
	copy(own, cells)

	return Run{cells: own}
}

// Cells returns a copy of the run's member cells in left-to-right order.
func (r Run) Cells() []grid.Cell[rune] {
	out := make([]grid.Cell[rune], len(r.cells))
	copy(out, r.cells)

	return out
}

// Value concatenates the run's digit characters and parses them as a base-10
// integer. Returns ErrNotNumeric (wrapped with the offending cell) when a
// member cell is not a digit.
func (r Run) Value() (int, error) {
	buf := make([]rune, 0, len(r.cells))
	for _, c := range r.cells {
		if !unicode.IsDigit(c.Value) {
			return 0, fmt.Errorf("runs: cell (%d,%d) %q: %w", c.Row, c.Col, c.Value, ErrNotNumeric)
		}
		buf = append(buf, c.Value)
	}
	v, err := strconv.Atoi(string(buf))
	if err != nil {
		return 0, fmt.Errorf("runs: parse %q: %w", string(buf), ErrNotNumeric)
	}

	return v, nil
}

// Neighbors returns every cell adjacent (all 8 directions, offset 1) to any
// member cell, excluding the run's own cells, deduplicated, in first-seen
// order. Complexity: O(len(run)).
func (r Run) Neighbors(g *grid.Grid[rune]) []grid.Cell[rune] {
	member := make(map[grid.Cell[rune]]struct{}, len(r.cells))
	for _, c := range r.cells {
		member[c] = struct{}{}
	}

	seen := make(map[grid.Cell[rune]]struct{})
	var matches []grid.Cell[rune]
	for _, c := range r.cells {
		for _, n := range g.PeekAll(c.Row, c.Col, 1) {
			if _, own := member[n]; own {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			matches = append(matches, n)
		}
	}

	return matches
}

// Touching reports whether any neighbor of the run carries a value matching
// pred. The predicate defines what counts as interesting — the library has
// no opinion about symbols.
func (r Run) Touching(g *grid.Grid[rune], pred func(r rune) bool) bool {
	for _, n := range r.Neighbors(g) {
		if pred(n.Value) {
			return true
		}
	}

	return false
}

// Marked returns the run's neighbors whose value equals mark, in first-seen
// order.
func (r Run) Marked(g *grid.Grid[rune], mark rune) []grid.Cell[rune] {
	var marked []grid.Cell[rune]
	for _, n := range r.Neighbors(g) {
		if n.Value == mark {
			marked = append(marked, n)
		}
	}

	return marked
}

// Collect scans g in row-major order and gathers every maximal run of
// horizontally contiguous digit cells. Runs never span rows.
// Complexity: O(cells).
func Collect(g *grid.Grid[rune]) []Run {
	var found []Run
	var current []grid.Cell[rune]
	flush := func() {
		if len(current) > 0 {
			found = append(found, NewRun(current))
			current = current[:0]
		}
	}
	for _, row := range g.Rows() {
		for _, cell := range row {
			if unicode.IsDigit(cell.Value) {
				current = append(current, cell)
				continue
			}
			flush()
		}
		flush()
	}

	return found
}

// GroupByMark inverts Marked over all the given runs: each marker cell with
// value mark maps to the runs it touches, in encounter order. The Cell key is
// structural, so a marker groups exactly the runs adjacent to that one
// position.
func GroupByMark(g *grid.Grid[rune], rs []Run, mark rune) map[grid.Cell[rune]][]Run {
	groups := make(map[grid.Cell[rune]][]Run)
	for _, r := range rs {
		for _, m := range r.Marked(g, mark) {
			groups[m] = append(groups[m], r)
		}
	}

	return groups
}
