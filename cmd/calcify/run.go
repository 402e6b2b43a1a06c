package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/edp1096/calcify/internal/logging"
	"github.com/edp1096/calcify/pkg/analysis"
	"github.com/edp1096/calcify/pkg/energetics"
	"github.com/edp1096/calcify/pkg/network"
	"github.com/edp1096/calcify/pkg/params"
	"github.com/edp1096/calcify/pkg/report"
)

const checkTolerance = 1e-9

func newLogger(cmd *cobra.Command, opts *globalOptions) *slog.Logger {
	level := "info"
	if opts.debug {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:     level,
		Format:    opts.logFormat,
		AddSource: opts.debug,
		Output:    cmd.ErrOrStderr(),
	})
}

// loadModel reads the constants and derives the model scalars.
func loadModel(cmd *cobra.Command, opts *globalOptions) (*energetics.Model, *slog.Logger, error) {
	log := newLogger(cmd, opts)

	c := params.Default()
	if opts.configPath != "" {
		var err error
		c, err = params.Load(opts.configPath)
		if err != nil {
			return nil, log, fmt.Errorf("loading constants: %w", err)
		}
		log.Debug("constants.loaded", "path", opts.configPath)
	}

	m, err := energetics.New(c, energetics.WithLogger(log))
	if err != nil {
		log.Error("constants.invalid", "error", err)
		return nil, log, err
	}
	return m, log, nil
}

func runModel(cmd *cobra.Command, opts *globalOptions, steps int, format string, plain bool) error {
	m, _, err := loadModel(cmd, opts)
	if err != nil {
		return err
	}

	series, err := m.Sweep(steps)
	if err != nil {
		return err
	}

	theme := report.DefaultTheme()
	if plain {
		theme = report.PlainTheme()
	}
	r := report.New(cmd.OutOrStdout(), theme)

	switch format {
	case "table":
		r.Scalars(m)
		r.Table(series, m.References())
		return nil
	case "json":
		return r.JSON(report.NewDocument(m, &series))
	case "csv":
		return r.CSV(series)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runSweep(cmd *cobra.Command, opts *globalOptions, steps int, format string) error {
	m, _, err := loadModel(cmd, opts)
	if err != nil {
		return err
	}

	series, err := m.Sweep(steps)
	if err != nil {
		return err
	}

	r := report.New(cmd.OutOrStdout(), report.PlainTheme())
	switch format {
	case "csv":
		return r.CSV(series)
	case "json":
		return r.JSON(report.NewDocument(m, &series))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runValidate(cmd *cobra.Command, opts *globalOptions) error {
	m, _, err := loadModel(cmd, opts)
	if err != nil {
		return err
	}

	d := m.Derived()
	fmt.Fprintf(cmd.OutOrStdout(), "constants valid: Ca_bd=%g fV=%g PCa=%g\n",
		d.Boundary.Concentration, d.Capacity.UsedFraction, d.Permeability)
	return nil
}

func runCheck(cmd *cobra.Command, opts *globalOptions, steps int, printSystem bool) error {
	m, log, err := loadModel(cmd, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	c := m.Constants()
	d := m.Derived()

	series, err := m.Sweep(steps)
	if err != nil {
		return err
	}

	// 1. Boundary layer
	boundary, err := network.Boundary(c)
	if err != nil {
		return err
	}
	defer boundary.Destroy()

	op := analysis.NewOperatingPoint()
	if err := op.Setup(boundary); err != nil {
		return err
	}
	if err := op.Execute(); err != nil {
		return err
	}
	if printSystem {
		boundary.PrintSystem(out)
	}

	surfaceKey := fmt.Sprintf("C(%s)", network.NodeSurface)
	bdDev := relDiff(op.GetResults()[surfaceKey][0], d.Boundary.Concentration)
	fmt.Fprintf(out, "boundary layer: Ca_bd closed=%.12g nodal=%.12g rel=%.3e\n",
		d.Boundary.Concentration, op.GetResults()[surfaceKey][0], bdDev)

	// 2. Split sweep
	uptake, err := network.Uptake(c, d.Permeability, 0)
	if err != nil {
		return err
	}
	defer uptake.Destroy()

	sweep, err := analysis.NewSplitSweep(d.Permeability, series.Fraction)
	if err != nil {
		return err
	}
	if err := sweep.Setup(uptake); err != nil {
		return err
	}
	if err := sweep.Execute(); err != nil {
		return err
	}
	if printSystem {
		uptake.PrintSystem(out)
	}

	nodal := sweep.GetResults()[surfaceKey]
	maxDev := 0.0
	for i, ca0 := range series.Concentration {
		maxDev = math.Max(maxDev, relDiff(nodal[i], ca0))
	}
	fmt.Fprintf(out, "split sweep: %d points, max rel deviation of Ca_0 = %.3e\n", len(nodal), maxDev)

	log.Debug("check.done", "boundary_dev", bdDev, "sweep_dev", maxDev)

	if bdDev > checkTolerance || maxDev > checkTolerance {
		return fmt.Errorf("nodal solution deviates from closed form beyond %g", checkTolerance)
	}
	return nil
}

func runDefaults(cmd *cobra.Command) error {
	data, err := params.Default().Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}
