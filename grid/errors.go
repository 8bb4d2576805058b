package grid

import "errors"

// Sentinel errors for grid construction.
// Queries never return errors: out-of-bounds lookups degrade to absent results.
var (
	// ErrNotDigit indicates a source rune could not be parsed as a base-10
	// digit during digit-mode construction. The wrapping message carries the
	// offending rune and its (row, col) position.
	// Usage: if errors.Is(err, grid.ErrNotDigit) { /* reject input text */ }.
	ErrNotDigit = errors.New("grid: rune is not a base-10 digit")
)
