package visibility

import (
	"github.com/katalvlaran/treeline/cellgrid"
	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/sightline"
)

// below is lower than any valid height.
const below int8 = heightgrid.MinHeight - 1

// Map records, per tree, the set of edges it is visible from.
// A cell only ever gains directions; nothing clears a mark once set.
type Map struct {
	from *cellgrid.Dense[sightline.Set]
}

// Scan computes the visibility Map of g. It does not modify g.
func Scan(g *heightgrid.Grid) *Map {
	rows, cols := g.Dims()
	// g is non-empty, so the shape is valid.
	from, _ := cellgrid.New[sightline.Set](rows, cols)

	for ray := range sightline.Sightlines(rows, cols) {
		// A sightline travelling Right entered from the Left edge.
		edge := ray.Dir.Opposite()
		tallest := below
		for r, c := range ray.Cells() {
			h := g.Height(r, c)
			if h > tallest {
				from.Put(r, c, from.Get(r, c).Add(edge))
				tallest = h
			}
		}
	}

	return &Map{from: from}
}

// Rows returns the number of rows.
func (m *Map) Rows() int { return m.from.Rows() }

// Cols returns the number of columns.
func (m *Map) Cols() int { return m.from.Cols() }

// Visible reports whether the tree at (row, col) is visible from any edge.
func (m *Map) Visible(row, col int) bool {
	return !m.from.Get(row, col).Empty()
}

// From returns the edges the tree at (row, col) is visible from.
func (m *Map) From(row, col int) sightline.Set {
	return m.from.Get(row, col)
}

// Count returns the number of visible trees.
func (m *Map) Count() int {
	n := 0
	for s := range m.from.Values() {
		if !s.Empty() {
			n++
		}
	}

	return n
}

// Bools returns the visibility grid as [][]bool.
func (m *Map) Bools() [][]bool {
	out := make([][]bool, m.from.Rows())
	for r := range out {
		out[r] = make([]bool, m.from.Cols())
		for c, s := range m.from.Row(r) {
			out[r][c] = !s.Empty()
		}
	}

	return out
}

// String draws visible trees as '#' and hidden ones as '.'.
func (m *Map) String() string {
	buf := make([]byte, 0, m.from.Len()+m.from.Rows())
	for r := 0; r < m.from.Rows(); r++ {
		for _, s := range m.from.Row(r) {
			if s.Empty() {
				buf = append(buf, '.')
			} else {
				buf = append(buf, '#')
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}
