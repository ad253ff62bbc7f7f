package heightgrid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies that New rejects empty, ragged or out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, heightgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, heightgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, heightgrid.ErrNonRectangular},
		{"TooTall", [][]int{{1, 10}}, heightgrid.ErrHeightRange},
		{"Negative", [][]int{{-1}}, heightgrid.ErrHeightRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heightgrid.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy checks that later edits to the input do not leak in.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{3, 0}, {2, 5}}
	g, err := heightgrid.New(values)
	require.NoError(t, err)

	values[0][0] = 9
	assert.Equal(t, int8(3), g.Height(0, 0))
	assert.Equal(t, [][]int{{3, 0}, {2, 5}}, g.Ints())
}

// TestGrid_Accessors checks dimensions, bounds and edge detection on a 3×4 grid.
func TestGrid_Accessors(t *testing.T) {
	g, err := heightgrid.New([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 0, 1, 2},
	})
	require.NoError(t, err)

	rows, cols := g.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, int8(7), g.Height(1, 2))

	assert.True(t, g.InBounds(2, 3))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, -1))

	assert.True(t, g.IsEdge(0, 2))
	assert.True(t, g.IsEdge(1, 3))
	assert.False(t, g.IsEdge(1, 1))
	assert.False(t, g.IsEdge(1, 2))

	var n int
	for range g.Cells() {
		n++
	}
	assert.Equal(t, 12, n)

	assert.Equal(t, "1234\n5678\n9012\n", g.String())
}
