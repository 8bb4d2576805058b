package grid

// checkedSub returns coord-offset and true when the subtraction stays at or
// above zero, and (0, false) otherwise. Every look-back neighbor coordinate
// must pass through it: a negative logical coordinate is never valid, and no
// peek may let one reach Get.
func checkedSub(coord, offset int) (int, bool) {
	if offset > coord {
		return 0, false
	}

	return coord - offset, true
}

// PeekHorizontal returns up to 2 cells at horizontal distance offset from
// (row, col): the left neighbor first (omitted when col-offset would
// underflow below zero, or is not present), then the right neighbor (omitted
// when not present). A negative offset yields no neighbors.
// Complexity: O(1).
func (g *Grid[V]) PeekHorizontal(row, col, offset int) []Cell[V] {
	if offset < 0 {
		return nil
	}
	var results []Cell[V]
	if left, ok := checkedSub(col, offset); ok {
		if cell, ok := g.Get(row, left); ok {
			results = append(results, cell)
		}
	}
	if cell, ok := g.Get(row, col+offset); ok {
		results = append(results, cell)
	}

	return results
}

// PeekVertical returns up to 2 cells at vertical distance offset from
// (row, col): the up neighbor first (omitted when row-offset would underflow
// below zero, or is not present), then the down neighbor (omitted when not
// present). A negative offset yields no neighbors.
// Complexity: O(1).
func (g *Grid[V]) PeekVertical(row, col, offset int) []Cell[V] {
	if offset < 0 {
		return nil
	}
	var results []Cell[V]
	if up, ok := checkedSub(row, offset); ok {
		if cell, ok := g.Get(up, col); ok {
			results = append(results, cell)
		}
	}
	if cell, ok := g.Get(row+offset, col); ok {
		results = append(results, cell)
	}

	return results
}

// PeekLinear returns up to 4 cells at distance offset from (row, col):
// the horizontal pair first, then the vertical pair, each in its own
// documented order.
// Complexity: O(1).
func (g *Grid[V]) PeekLinear(row, col, offset int) []Cell[V] {
	results := g.PeekHorizontal(row, col, offset)

	return append(results, g.PeekVertical(row, col, offset)...)
}

// PeekDiagonal returns up to 4 cells at diagonal distance offset from
// (row, col), in fixed order: up-left, up-right, down-left, down-right.
// A diagonal is included only when both of its coordinate components are in
// bounds; the up and left components are individually underflow-guarded,
// while down and right only add and cannot underflow. A negative offset
// yields no neighbors.
// Complexity: O(1).
func (g *Grid[V]) PeekDiagonal(row, col, offset int) []Cell[V] {
	if offset < 0 {
		return nil
	}
	up, upOK := checkedSub(row, offset)
	left, leftOK := checkedSub(col, offset)

	var results []Cell[V]
	if upOK && leftOK {
		if cell, ok := g.Get(up, left); ok {
			results = append(results, cell)
		}
	}
	if upOK {
		if cell, ok := g.Get(up, col+offset); ok {
			results = append(results, cell)
		}
	}
	if leftOK {
		if cell, ok := g.Get(row+offset, left); ok {
			results = append(results, cell)
		}
	}
	if cell, ok := g.Get(row+offset, col+offset); ok {
		results = append(results, cell)
	}

	return results
}

// PeekAll returns up to 8 cells at distance offset from (row, col): the
// linear results first, then the diagonal results, each in its own
// documented order.
//
// PeekAll performs NO deduplication: with offset 0, or wherever bounds make
// directions coincide, the same cell may appear more than once. Removing
// duplicates is deliberately the caller's responsibility.
// Complexity: O(1).
func (g *Grid[V]) PeekAll(row, col, offset int) []Cell[V] {
	results := g.PeekLinear(row, col, offset)

	return append(results, g.PeekDiagonal(row, col, offset)...)
}
