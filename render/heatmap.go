// Package render draws grids as PNG heat maps with gonum/plot.
// Row 0 of the grid is drawn at the top of the image, column 0 at the left.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/scenic"
	"github.com/katalvlaran/treeline/visibility"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	// ErrBadSize indicates a non-positive image size.
	ErrBadSize = errors.New("render: width and height must be > 0")
	// ErrBadLevels indicates fewer than two palette levels.
	ErrBadLevels = errors.New("render: levels must be >= 2")
)

// Options configures Heatmap.
type Options struct {
	Width, Height vg.Length
	Title         string
	// Levels is the number of palette colours.
	Levels int
}

// DefaultOptions returns a 4in square image with a 10-level palette.
func DefaultOptions() Options {
	return Options{Width: 4 * vg.Inch, Height: 4 * vg.Inch, Levels: 10}
}

// Field is a grid of values the heat map can draw.
type Field = plotter.GridXYZ

// field adapts a rows×cols value function to plotter.GridXYZ.
// GridXYZ wants Y increasing upward, so grid row 0 maps to Y = rows-1.
type field struct {
	rows, cols int
	z          func(row, col int) float64
}

func (f field) Dims() (c, r int) { return f.cols, f.rows }
func (f field) Z(c, r int) float64 { return f.z(f.rows-1-r, c) }
func (f field) X(c int) float64 { return float64(c) }
func (f field) Y(r int) float64 { return float64(r) }

// HeightField draws tree heights.
func HeightField(g *heightgrid.Grid) Field {
	rows, cols := g.Dims()
	return field{rows: rows, cols: cols, z: func(r, c int) float64 {
		return float64(g.Height(r, c))
	}}
}

// VisibilityField draws visible trees as 1 and hidden trees as 0.
func VisibilityField(m *visibility.Map) Field {
	return field{rows: m.Rows(), cols: m.Cols(), z: func(r, c int) float64 {
		if m.Visible(r, c) {
			return 1
		}
		return 0
	}}
}

// ScoreField draws scenic scores.
func ScoreField(s *scenic.Scores) Field {
	return field{rows: s.Rows(), cols: s.Cols(), z: func(r, c int) float64 {
		return float64(s.At(r, c))
	}}
}

// Heatmap writes src to w as a PNG heat map.
func Heatmap(w io.Writer, src Field, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrBadSize
	}
	if opts.Levels < 2 {
		return ErrBadLevels
	}

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(src, cm.Palette(opts.Levels))
	if hm.Min == hm.Max {
		// A flat field would divide by zero when picking colours.
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Add(hm)

	c := vgimg.New(opts.Width, opts.Height)
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}

	return nil
}
