package runs_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/runs"
)

// benchGrid builds an n×n schematic mixing digits, filler and '*' markers.
func benchGrid(n int) *grid.Grid[rune] {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	sb.Grow(n * (n + 1))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch rng.Intn(10) {
			case 0:
				sb.WriteByte('*')
			case 1, 2, 3:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + rng.Intn(10)))
			}
		}
		if y < n-1 {
			sb.WriteByte('\n')
		}
	}

	return grid.FromText(sb.String())
}

// BenchmarkCollect measures run extraction over a 1000×1000 schematic.
// Complexity: O(cells)
func BenchmarkCollect(b *testing.B) {
	g := benchGrid(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = runs.Collect(g)
	}
}

// BenchmarkGroupByMark measures the marker inversion over all runs of a
// 500×500 schematic.
// Complexity: O(total run cells)
func BenchmarkGroupByMark(b *testing.B) {
	g := benchGrid(500)
	rs := runs.Collect(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = runs.GroupByMark(g, rs, '*')
	}
}
