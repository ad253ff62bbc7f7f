// Package cellgrid provides Dense, a row-major rectangular store of cells.
// It backs every grid in treeline: tree heights, visibility sets and
// scenic scores all live in a Dense of the appropriate element type.
package cellgrid

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrBadShape indicates that requested dimensions are non-positive.
	ErrBadShape = errors.New("cellgrid: rows and cols must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid range.
	ErrOutOfRange = errors.New("cellgrid: index out of range")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols grid of T stored in a flat slice.
// Cell (r, c) lives at data[r*cols+c].
type Dense[T any] struct {
	rows, cols int
	data       []T
}

// New creates a rows×cols Dense with every cell set to the zero value of T.
// Returns ErrBadShape if rows or cols is not positive.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.cols }

// Len returns rows*cols.
func (d *Dense[T]) Len() int { return len(d.data) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (d *Dense[T]) InBounds(row, col int) bool {
	return row >= 0 && row < d.rows && col >= 0 && col < d.cols
}

// IsEdge reports whether (row, col) sits on the outer border of the grid.
// The caller must pass an in-bounds cell.
func (d *Dense[T]) IsEdge(row, col int) bool {
	return row == 0 || col == 0 || row == d.rows-1 || col == d.cols-1
}

// Index maps (row, col) to its row-major offset.
// Complexity: O(1).
func (d *Dense[T]) Index(row, col int) int {
	return row*d.cols + col
}

// Coordinate converts a row-major offset back to (row, col).
// Complexity: O(1).
func (d *Dense[T]) Coordinate(idx int) (row, col int) {
	return idx / d.cols, idx % d.cols
}

// At returns the cell at (row, col) or ErrOutOfRange.
func (d *Dense[T]) At(row, col int) (T, error) {
	if !d.InBounds(row, col) {
		var zero T
		return zero, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return d.data[d.Index(row, col)], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
func (d *Dense[T]) Set(row, col int, v T) error {
	if !d.InBounds(row, col) {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	d.data[d.Index(row, col)] = v

	return nil
}

// Get is the unchecked form of At for scan loops that already stay in bounds.
// It panics on an out-of-range index like a slice access would.
func (d *Dense[T]) Get(row, col int) T {
	return d.data[row*d.cols+col]
}

// Put is the unchecked form of Set.
func (d *Dense[T]) Put(row, col int, v T) {
	d.data[row*d.cols+col] = v
}

// Row returns the backing slice of a single row. Writes through it are
// visible in d; distinct rows never alias each other.
func (d *Dense[T]) Row(row int) []T {
	return d.data[row*d.cols : (row+1)*d.cols : (row+1)*d.cols]
}

// Cells yields every (row, col) pair in row-major order.
func (d *Dense[T]) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := 0; r < d.rows; r++ {
			for c := 0; c < d.cols; c++ {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// Values yields every cell value in row-major order.
func (d *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of d.
// Complexity: O(rows*cols) time and memory.
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)

	return &Dense[T]{rows: d.rows, cols: d.cols, data: data}
}

// Rows2D copies the grid out as a [][]T, one slice per row.
func (d *Dense[T]) Rows2D() [][]T {
	out := make([][]T, d.rows)
	for r := range out {
		out[r] = make([]T, d.cols)
		copy(out[r], d.Row(r))
	}

	return out
}

// String renders one bracketed row per line, for debugging.
func (d *Dense[T]) String() string {
	var sb strings.Builder
	for r := 0; r < d.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < d.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, d.data[r*d.cols+c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
