// File: scenic/scenic_test.go
package scenic_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/scenic"
	"github.com/katalvlaran/treeline/sightline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "30373\n25512\n65332\n33549\n35390\n"

func mustParse(t testing.TB, s string) *heightgrid.Grid {
	t.Helper()
	g, err := heightgrid.ParseString(s)
	require.NoError(t, err)
	return g
}

func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int) *heightgrid.Grid {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = rng.Intn(10)
		}
	}
	g, err := heightgrid.New(values)
	require.NoError(t, err)
	return g
}

// TestInspect_Sample checks the two trees worked through in the puzzle text.
func TestInspect_Sample(t *testing.T) {
	g := mustParse(t, sample)

	v := scenic.Inspect(g, 1, 2)
	assert.Equal(t, scenic.View{Up: 1, Left: 1, Down: 2, Right: 2}, v)
	assert.Equal(t, uint64(4), v.Score())

	v = scenic.Inspect(g, 3, 2)
	assert.Equal(t, scenic.View{Up: 2, Left: 2, Down: 1, Right: 2}, v)
	assert.Equal(t, uint64(8), v.Score())
	assert.Equal(t, "up=2 left=2 down=1 right=2", v.String())
	assert.Equal(t, 1, v.Get(sightline.Down))
}

// TestDistance_StopsAtEqualHeight counts the blocking tree and stops there.
func TestDistance_StopsAtEqualHeight(t *testing.T) {
	g := mustParse(t, "15151\n")
	assert.Equal(t, 2, scenic.Distance(g, 0, 1, sightline.Right))
	assert.Equal(t, 1, scenic.Distance(g, 0, 1, sightline.Left))
	assert.Equal(t, 0, scenic.Distance(g, 0, 1, sightline.Up))
	assert.Equal(t, 0, scenic.Distance(g, 0, 4, sightline.Right))
	// Nothing blocks a 9 looking left; it sees to the edge.
	g = mustParse(t, "12349\n")
	assert.Equal(t, 4, scenic.Distance(g, 0, 4, sightline.Left))
}

// TestScan_Scenarios checks the best score of the reference grids.
func TestScan_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  scenic.Best
	}{
		{"Uniform3x3", "555\n555\n555\n", scenic.Best{Row: 1, Col: 1, Score: 1}},
		{"Sample", sample, scenic.Best{Row: 3, Col: 2, Score: 8}},
		{"SingleRow", "999\n", scenic.Best{}},
		{"SingleColumn", "1\n5\n2\n", scenic.Best{}},
		{"SingleCell", "7\n", scenic.Best{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scenic.Scan(context.Background(), mustParse(t, tc.input), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Max())
		})
	}
}

// TestScan_UniformAllEdges scores every tree of a 3×3 uniform grid.
// Only the centre is off the edge; it sees one tree each way.
func TestScan_UniformAllEdges(t *testing.T) {
	s, err := scenic.Scan(context.Background(), mustParse(t, "555\n555\n555\n"), nil)
	require.NoError(t, err)

	want := [][]uint64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	if diff := cmp.Diff(want, s.Uint64s()); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

// TestScan_SampleGrid checks the whole sample score grid.
func TestScan_SampleGrid(t *testing.T) {
	s, err := scenic.Scan(context.Background(), mustParse(t, sample), nil)
	require.NoError(t, err)

	want := [][]uint64{
		{0, 0, 0, 0, 0},
		{0, 1, 4, 1, 0},
		{0, 6, 1, 2, 0},
		{0, 1, 8, 3, 0},
		{0, 0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, s.Uint64s()); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, s.Rows())
	assert.Equal(t, 5, s.Cols())
	assert.Equal(t, uint64(8), s.At(3, 2))
}

// TestScan_EdgeScoresZero checks random grids for zero-score border trees
// and distances bounded by the grid dimensions.
func TestScan_EdgeScoresZero(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 40; i++ {
		rows, cols := 1+rng.Intn(12), 1+rng.Intn(12)
		g := randomGrid(t, rng, rows, cols)

		s, err := scenic.Scan(context.Background(), g, nil)
		require.NoError(t, err)
		for r, c := range g.Cells() {
			if g.IsEdge(r, c) {
				assert.Zero(t, s.At(r, c), "edge tree (%d,%d)", r, c)
			}
			v := scenic.Inspect(g, r, c)
			for _, d := range []sightline.Direction{sightline.Up, sightline.Down} {
				assert.GreaterOrEqual(t, v.Get(d), 0)
				assert.LessOrEqual(t, v.Get(d), rows-1)
			}
			for _, d := range []sightline.Direction{sightline.Left, sightline.Right} {
				assert.GreaterOrEqual(t, v.Get(d), 0)
				assert.LessOrEqual(t, v.Get(d), cols-1)
			}
			assert.Equal(t, v.Score(), s.At(r, c))
		}
	}
}

// TestScan_WorkersMatchSequential compares parallel and sequential scans.
func TestScan_WorkersMatchSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := randomGrid(t, rng, 40, 33)

	seq, err := scenic.Scan(context.Background(), g, nil)
	require.NoError(t, err)
	for _, w := range []int{0, 2, 8, 64} {
		par, err := scenic.Scan(context.Background(), g, &scenic.Options{Workers: w})
		require.NoError(t, err)
		assert.Equal(t, seq.Uint64s(), par.Uint64s(), "workers=%d", w)
		assert.Equal(t, seq.Max(), par.Max(), "workers=%d", w)
	}
}

// TestScan_BadWorkers rejects a negative worker count.
func TestScan_BadWorkers(t *testing.T) {
	_, err := scenic.Scan(context.Background(), mustParse(t, sample), &scenic.Options{Workers: -1})
	assert.ErrorIs(t, err, scenic.ErrBadWorkers)
}

// TestScan_Cancelled returns the context error and no scores.
func TestScan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, w := range []int{1, 4} {
		s, err := scenic.Scan(ctx, mustParse(t, sample), &scenic.Options{Workers: w})
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", w)
		assert.Nil(t, s)
	}
}
