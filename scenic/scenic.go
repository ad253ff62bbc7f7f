package scenic

import (
	"context"

	"github.com/katalvlaran/treeline/cellgrid"
	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/sightline"
	"golang.org/x/sync/errgroup"
)

// Distance returns how many trees the tree at (row, col) sees looking in dir.
// The walk counts every step and stops after the first tree whose height is
// at least the origin's. The result lies in [0, dimension-1].
func Distance(g *heightgrid.Grid, row, col int, dir sightline.Direction) int {
	rows, cols := g.Dims()
	origin := g.Height(row, col)
	n := 0
	for r, c := range sightline.Outward(rows, cols, row, col, dir).Cells() {
		n++
		if g.Height(r, c) >= origin {
			break
		}
	}

	return n
}

// Inspect returns the four viewing distances of the tree at (row, col).
func Inspect(g *heightgrid.Grid, row, col int) View {
	return View{
		Up:    Distance(g, row, col, sightline.Up),
		Left:  Distance(g, row, col, sightline.Left),
		Down:  Distance(g, row, col, sightline.Down),
		Right: Distance(g, row, col, sightline.Right),
	}
}

// Scan computes the scenic score of every tree in g.
// A nil opts uses DefaultOptions. ctx is checked between rows; if it is
// cancelled Scan returns ctx.Err() and no scores.
//
// Errors:
//   - ErrBadWorkers — opts.Workers < 0.
func Scan(ctx context.Context, g *heightgrid.Grid, opts *Options) (*Scores, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return nil, ErrBadWorkers
	}

	rows, cols := g.Dims()
	cells, err := cellgrid.New[uint64](rows, cols)
	if err != nil {
		return nil, err
	}

	if o.Workers <= 1 {
		for r := 0; r < rows; r++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			scoreRow(g, r, cells.Row(r))
		}
		return &Scores{cells: cells}, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for r := 0; r < rows; r++ {
		out := cells.Row(r)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scoreRow(g, r, out)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Scores{cells: cells}, nil
}

// scoreRow writes the scores of row r into out, which has one slot per column.
func scoreRow(g *heightgrid.Grid, r int, out []uint64) {
	for c := range out {
		out[c] = Inspect(g, r, c).Score()
	}
}
