package scenic

import "github.com/katalvlaran/treeline/cellgrid"

// Scores is the scenic score of every tree, same shape as the height grid.
type Scores struct {
	cells *cellgrid.Dense[uint64]
}

// Rows returns the number of rows.
func (s *Scores) Rows() int { return s.cells.Rows() }

// Cols returns the number of columns.
func (s *Scores) Cols() int { return s.cells.Cols() }

// At returns the score of the tree at (row, col).
func (s *Scores) At(row, col int) uint64 {
	return s.cells.Get(row, col)
}

// Max returns the highest score and where it occurs.
func (s *Scores) Max() Best {
	best := Best{}
	for r, c := range s.cells.Cells() {
		if v := s.cells.Get(r, c); v > best.Score {
			best = Best{Row: r, Col: c, Score: v}
		}
	}

	return best
}

// Uint64s copies the scores out as [][]uint64.
func (s *Scores) Uint64s() [][]uint64 {
	return s.cells.Rows2D()
}
