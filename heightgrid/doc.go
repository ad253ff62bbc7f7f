// Package heightgrid holds the input of the tree survey: a rectangular
// grid of single-digit tree heights.
//
// What:
//
//   - Grid wraps a rectangular matrix of heights in [0,9], immutable once built.
//   - New validates and deep-copies a [][]int.
//   - Parse reads one row per line of '0'..'9' characters from an io.Reader.
//
// Why:
//
//   - Scanners (visibility, scenic) take a *Grid by reference and rely on
//     rows ≥ 1, cols ≥ 1 and uniform row length without re-checking.
//
// Complexity:
//
//   - New, Parse: O(R×C) time and memory.
//   - Height, InBounds, IsEdge: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrHeightRange: a value passed to New is outside [0,9].
//   - ErrBadDigit: Parse met a byte that is not a decimal digit.
//
// Parse failures are reported as *ParseError carrying the 1-based line and
// column; errors.Is still matches the sentinel.
package heightgrid
