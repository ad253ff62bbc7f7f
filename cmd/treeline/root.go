package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/treeline"
	"github.com/katalvlaran/treeline/config"
	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/scenic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the state shared by every subcommand.
type app struct {
	in       io.Reader
	out      io.Writer
	logger   *log.Logger
	cfgPath  string
	flagVals config.Config // values bound to flags; copied over cfg only when set
	cfg      config.Config
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	logger := log.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	a := &app{in: in, out: out, logger: logger, flagVals: config.Default()}

	root := &cobra.Command{
		Use:   "treeline [input]",
		Short: "Count visible trees or find the best scenic score in a height grid.",
		Long: `treeline reads a rectangular grid of single-digit tree heights, one row
per line, and prints one number:

  part 1: how many trees are visible from outside the grid
  part 2: the highest scenic score of any tree`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.solve(cmd.Context())
			if err != nil {
				a.logger.Error(err)
			}
			return err
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "TOML configuration file")
	pf.StringVar(&a.flagVals.Input, "input", a.flagVals.Input, `grid file; empty or "-" reads standard input`)
	pf.StringVar(&a.flagVals.LogLevel, "log-level", a.flagVals.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVarP(&a.flagVals.Part, "part", "p", a.flagVals.Part, `puzzle part: "1" visible trees, "2" best scenic score`)
	root.Flags().IntVarP(&a.flagVals.Workers, "workers", "w", a.flagVals.Workers, "rows scored concurrently in part 2")

	root.AddCommand(a.renderCmd(), versionCmd())

	return root
}

// setup loads the config file, applies explicitly set flags and the
// positional input, then validates the result.
func (a *app) setup(flags *pflag.FlagSet, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		a.logger.Error(err)
		return err
	}
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = a.flagVals.Input
		case "log-level":
			cfg.LogLevel = a.flagVals.LogLevel
		case "part":
			cfg.Part = a.flagVals.Part
		case "workers":
			cfg.Workers = a.flagVals.Workers
		case "out":
			cfg.Render.Output = a.flagVals.Render.Output
		case "layer":
			cfg.Render.Layer = a.flagVals.Render.Layer
		case "width":
			cfg.Render.Width = a.flagVals.Render.Width
		case "height":
			cfg.Render.Height = a.flagVals.Render.Height
		}
	})
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		a.logger.Error(err)
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	a.logger.SetLevel(level)
	a.cfg = cfg

	return nil
}

// loadGrid reads the configured input.
func (a *app) loadGrid() (*heightgrid.Grid, error) {
	var (
		g   *heightgrid.Grid
		err error
	)
	if a.cfg.Input == "" || a.cfg.Input == "-" {
		g, err = heightgrid.Parse(a.in)
	} else {
		g, err = heightgrid.ParseFile(a.cfg.Input)
	}
	if err != nil {
		return nil, fmt.Errorf("load grid: %w", err)
	}
	rows, cols := g.Dims()
	a.logger.WithFields(log.Fields{"rows": rows, "cols": cols, "input": a.cfg.Input}).Debug("grid loaded")

	return g, nil
}

func (a *app) solve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	part, _ := treeline.ParsePart(a.cfg.Part)
	g, err := a.loadGrid()
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := treeline.Solve(ctx, g, part, &scenic.Options{Workers: a.cfg.Workers})
	if err != nil {
		return err
	}
	a.logger.WithFields(log.Fields{
		"part":    part,
		"workers": a.cfg.Workers,
		"elapsed": time.Since(start),
	}).Debug("solved")

	_, err = fmt.Fprintln(a.out, res)
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of treeline",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treeline v%s\n", treeline.Version)
		},
	}
}
