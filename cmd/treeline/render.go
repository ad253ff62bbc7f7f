package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/treeline/config"
	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/render"
	"github.com/katalvlaran/treeline/scenic"
	"github.com/katalvlaran/treeline/visibility"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Draw heights, visibility or scenic scores as a PNG heat map.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.render(cmd.Context())
			if err != nil {
				a.logger.Error(err)
			}
			return err
		},
	}
	def := config.Default().Render
	f := cmd.Flags()
	f.StringVarP(&a.flagVals.Render.Output, "out", "o", def.Output, "PNG file to write")
	f.StringVar(&a.flagVals.Render.Layer, "layer", def.Layer, "what to draw: heights, visible or scenic")
	f.Float64Var(&a.flagVals.Render.Width, "width", def.Width, "image width in inches")
	f.Float64Var(&a.flagVals.Render.Height, "height", def.Height, "image height in inches")
	f.IntVarP(&a.flagVals.Workers, "workers", "w", a.flagVals.Workers, "rows scored concurrently for the scenic layer")

	return cmd
}

// field builds the layer selected in the config.
func (a *app) field(ctx context.Context, g *heightgrid.Grid) (render.Field, error) {
	switch a.cfg.Render.Layer {
	case config.LayerHeights:
		return render.HeightField(g), nil
	case config.LayerVisible:
		return render.VisibilityField(visibility.Scan(g)), nil
	default:
		scores, err := scenic.Scan(ctx, g, &scenic.Options{Workers: a.cfg.Workers})
		if err != nil {
			return nil, err
		}
		return render.ScoreField(scores), nil
	}
}

func (a *app) render(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, err := a.loadGrid()
	if err != nil {
		return err
	}
	src, err := a.field(ctx, g)
	if err != nil {
		return err
	}

	rc := a.cfg.Render
	f, err := os.Create(rc.Output)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	opts := render.DefaultOptions()
	opts.Width = vg.Length(rc.Width) * vg.Inch
	opts.Height = vg.Length(rc.Height) * vg.Inch
	opts.Title = rc.Layer
	if err := render.Heatmap(f, src, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	a.logger.WithFields(log.Fields{"layer": rc.Layer, "out": rc.Output}).Info("heat map written")

	return nil
}
