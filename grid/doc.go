// Package grid provides an immutable, row-major 2D collection of cells with
// bounds-safe neighbor lookups ("peeks") at arbitrary offsets.
//
// What:
//
//   - Cell[V] holds one addressable position: (Row, Col, Value). With a
//     comparable V, a Cell compares structurally and works as a map key.
//   - Grid[V] stores cells row by row. Rows may have different lengths; no
//     rectangularity is enforced or assumed.
//   - Get answers exact coordinate lookups; the Peek family answers neighbor
//     queries in a fixed direction order, omitting anything out of bounds.
//   - Construction: New from prebuilt value rows, FromText for rune cells,
//     FromDigits for base-10 int cells, FromTextFunc for any conversion.
//
// Why:
//
//   - Puzzle and game boards: adjacency scans without index arithmetic at
//     every call site.
//   - Text-shaped data: one line per row, one rune per cell, zero-based
//     coordinates assigned by enumeration order.
//   - Overlay analysis: peeks return copies, so consumers may collect, group
//     and compare cells freely without aliasing grid state.
//
// The one correctness-critical idiom here is the underflow guard: a look-back
// coordinate (row-offset or col-offset) is computed through a checked
// subtraction that reports "no such coordinate" instead of going negative.
// No peek ever reports a neighbor derived from a wrapped or negative
// coordinate, at any offset, on any edge.
//
// Complexity:
//
//   - Construction: O(R×C) time and memory (cells are deep-copied in).
//   - Get, NumRows and every Peek variant: O(1) time.
//   - Rows: O(R×C) time and memory (deep-copied view).
//
// Errors:
//
//   - ErrNotDigit: FromDigits (or a failing FromTextFunc conversion) met a
//     rune that is not a base-10 digit; the wrapped message carries the rune
//     and its (row, col). Construction is all-or-nothing.
//   - Queries never fail: out-of-range and underflowing neighbors are simply
//     absent from results, and Get reports absence via its second return.
package grid
