// Package gridkit is a small toolkit for two-dimensional grids of cells —
// build a grid from a block of text, look cells up by coordinate, and ask
// bounds-safe questions about their neighbors.
//
// 🚀 What is gridkit?
//
//	A compact, generic library that brings together:
//		• Cell[V] — one addressable (row, col, value) unit, usable as a map key
//		• Grid[V] — an immutable, row-major, possibly ragged 2D collection
//		• Peeks — horizontal / vertical / linear / diagonal / all neighbor
//		  lookups at any offset, with strict underflow guarding
//		• Construction — from raw rows, from text (rune cells), or from text
//		  parsed digit-by-digit (int cells)
//		• runs — contiguous digit-run extraction and adjacency overlay on top
//		  of Grid[rune]
//
// ✨ Why choose gridkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – queries never panic, never error; they degrade
//     to absent results at every boundary
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any comparable value type rides in a Cell
//
// Everything is organized under two subpackages:
//
//	grid/ — fundamental Cell & Grid types, construction and peek queries
//	runs/ — contiguous digit runs over a Grid[rune] and their neighborhoods
//
// Quick ASCII example:
//
//	467..114..
//	...*......
//
//	a 2×10 rune grid; PeekAll(0, 2, 1) around the '7' returns its '6' and '.'
//	row neighbors, the '.' below, and the '.' and '*' diagonals.
//
// Dive into the per-package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
