package heightgrid

import (
	"iter"
	"strings"

	"github.com/katalvlaran/treeline/cellgrid"
)

const (
	// MinHeight is the shortest tree a grid may hold.
	MinHeight = 0
	// MaxHeight is the tallest tree a grid may hold.
	MaxHeight = 9
)

// Grid is a rectangular matrix of tree heights. It is immutable once built;
// scanners read it by reference and never write to it.
type Grid struct {
	cells *cellgrid.Dense[int8]
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrHeightRange if a value is outside [MinHeight, MaxHeight].
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells, err := cellgrid.New[int8](h, w)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			if v < MinHeight || v > MaxHeight {
				return nil, ErrHeightRange
			}
			cells.Put(r, c, int8(v))
		}
	}

	return &Grid{cells: cells}, nil
}

// fromRows builds a Grid from already-validated digit rows.
func fromRows(rows [][]int8) *Grid {
	// rows is non-empty and rectangular; Parse guarantees both.
	cells, _ := cellgrid.New[int8](len(rows), len(rows[0]))
	for r, row := range rows {
		copy(cells.Row(r), row)
	}

	return &Grid{cells: cells}
}

// Rows returns the number of rows (input lines).
func (g *Grid) Rows() int { return g.cells.Rows() }

// Cols returns the number of columns (characters per line).
func (g *Grid) Cols() int { return g.cells.Cols() }

// Dims returns (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.cells.Rows(), g.cells.Cols() }

// Height returns the height of the tree at (row, col).
// The cell must be in bounds; scanners iterate only over valid cells.
func (g *Grid) Height(row, col int) int8 {
	return g.cells.Get(row, col)
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return g.cells.InBounds(row, col)
}

// IsEdge reports whether (row, col) is on row 0, the last row,
// column 0 or the last column.
func (g *Grid) IsEdge(row, col int) bool {
	return g.cells.IsEdge(row, col)
}

// Cells yields every (row, col) in row-major order.
func (g *Grid) Cells() iter.Seq2[int, int] {
	return g.cells.Cells()
}

// Ints copies the heights out as [][]int.
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.Rows())
	for r := range out {
		out[r] = make([]int, g.Cols())
		for c, h := range g.cells.Row(r) {
			out[r][c] = int(h)
		}
	}

	return out
}

// String renders the grid back into its line format, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.cells.Len() + g.Rows())
	for r := 0; r < g.Rows(); r++ {
		for _, h := range g.cells.Row(r) {
			sb.WriteByte('0' + byte(h))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
