package sightline

import "iter"

// Ray is a straight run of Len cells starting at (Row, Col) and stepping
// in Dir. It is a value: walking it twice yields the same cells.
type Ray struct {
	Row, Col int
	Dir      Direction
	Len      int
}

// Cells yields the (row, col) pairs of the ray in walking order.
func (r Ray) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		dr, dc := r.Dir.Delta()
		row, col := r.Row, r.Col
		for i := 0; i < r.Len; i++ {
			if !yield(row, col) {
				return
			}
			row, col = row+dr, col+dc
		}
	}
}

// Outward returns the ray from the tree at (row, col) toward the grid edge
// in dir on a rows×cols grid. The tree itself is not part of the ray, so a
// tree on that edge gets an empty ray.
func Outward(rows, cols, row, col int, dir Direction) Ray {
	dr, dc := dir.Delta()
	var n int
	switch dir {
	case Up:
		n = row
	case Down:
		n = rows - 1 - row
	case Left:
		n = col
	case Right:
		n = cols - 1 - col
	}

	return Ray{Row: row + dr, Col: col + dc, Dir: dir, Len: n}
}

// Inward returns the sightline that enters a rows×cols grid from an edge
// and crosses it travelling in dir. line selects the row (for Left/Right)
// or column (for Up/Down). Right scans row line left-to-right, Down scans
// column line top-to-bottom, and so on.
func Inward(rows, cols int, dir Direction, line int) Ray {
	switch dir {
	case Down:
		return Ray{Row: 0, Col: line, Dir: Down, Len: rows}
	case Up:
		return Ray{Row: rows - 1, Col: line, Dir: Up, Len: rows}
	case Right:
		return Ray{Row: line, Col: 0, Dir: Right, Len: cols}
	default:
		return Ray{Row: line, Col: cols - 1, Dir: Left, Len: cols}
	}
}

// Sightlines yields the 2·(rows+cols) inward sightlines of a rows×cols grid:
// every column top-down and bottom-up, then every row left-right and
// right-left.
func Sightlines(rows, cols int) iter.Seq[Ray] {
	return func(yield func(Ray) bool) {
		for c := 0; c < cols; c++ {
			if !yield(Inward(rows, cols, Down, c)) || !yield(Inward(rows, cols, Up, c)) {
				return
			}
		}
		for r := 0; r < rows; r++ {
			if !yield(Inward(rows, cols, Right, r)) || !yield(Inward(rows, cols, Left, r)) {
				return
			}
		}
	}
}
