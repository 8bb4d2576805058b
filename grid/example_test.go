// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromText + Get
////////////////////////////////////////////////////////////////////////////////

// ExampleFromText demonstrates character-identity construction and coordinate
// lookup on a fragment of an engine schematic.
// Scenario:
//
//   - Two lines, one rune per cell, zero-based row/col by enumeration order.
//   - '.' and '*' are ordinary cell values; the grid has no symbol opinions.
//
// Complexity: O(len(text)) to build, O(1) per Get.
func ExampleFromText() {
	g := grid.FromText("467..114..\n...*......")

	cell, ok := g.Get(1, 3)
	fmt.Printf("ok=%v row=%d col=%d value=%c\n", ok, cell.Row, cell.Col, cell.Value)

	_, ok = g.Get(2, 0)
	fmt.Println("beyond last row:", ok)

	// Output:
	// ok=true row=1 col=3 value=*
	// beyond last row: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: PeekAll
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_PeekAll demonstrates the full neighborhood query at offset 1.
// Scenario:
//
//   - 3×3 digit grid; the center (1,1) has all 8 neighbors.
//   - Fixed order: left, right, up, down, up-left, up-right, down-left,
//     down-right.
//   - The corner (0,0) keeps only the 3 neighbors that exist; nothing is
//     invented past the zero edges.
//
// Complexity: O(1) per peek.
func ExampleGrid_PeekAll() {
	g, _ := grid.FromDigits("123\n456\n789")

	for i, c := range g.PeekAll(1, 1, 1) {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("(%d,%d)=%d", c.Row, c.Col, c.Value)
	}
	fmt.Println()

	for i, c := range g.PeekAll(0, 0, 1) {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("(%d,%d)=%d", c.Row, c.Col, c.Value)
	}
	fmt.Println()

	// Output:
	// (1,0)=4 (1,2)=6 (0,1)=2 (2,1)=8 (0,0)=1 (0,2)=3 (2,0)=7 (2,2)=9
	// (0,1)=2 (1,0)=4 (1,1)=5
}
