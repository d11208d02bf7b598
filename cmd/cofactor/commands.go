// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/config"
	"github.com/katalvlaran/cofactor/input"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/katalvlaran/cofactor/tracer"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// matrixFlags are shared by invert and det.
type matrixFlags struct {
	rows      string
	file      string
	steps     bool
	html      bool
	iterative bool
	blankZero bool
}

// app carries what every subcommand needs after PersistentPreRunE.
type app struct {
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "cofactor",
		Short:         "Invert square matrices by cofactor expansion, step by step",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			log, err := config.NewLogger(config.LogLevel())
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.AddCommand(
		newInvertCmd(a),
		newDetCmd(a),
		newFractionCmd(),
		newServeCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "cofactor", version)
			},
		},
	)

	return root
}

func (f *matrixFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.rows, "rows", "r", "", `matrix rows, e.g. "4 7; 2 6"`)
	fl.StringVarP(&f.file, "file", "f", "", "YAML or JSON run file with a matrix key")
	fl.BoolVarP(&f.steps, "steps", "s", false, "print every computation step")
	fl.BoolVar(&f.html, "html", false, "print the steps as an HTML fragment")
	fl.BoolVar(&f.iterative, "iterative", false, "expand determinants with an explicit stack")
	fl.BoolVar(&f.blankZero, "blank-zero", false, "read blank cells as 0")
	cmd.MarkFlagsMutuallyExclusive("rows", "file")
	cmd.MarkFlagsOneRequired("rows", "file")
}

// load reads the matrix and resolves the engine options. A run file may
// ask for steps or a strategy; flags only ever switch these on.
func (f *matrixFlags) load(a *app, rec *tracer.Recorder) (*matrix.Dense, []adjugate.Option, error) {
	maxOrder := config.MaxOrder()
	inOpts := []input.Option{input.WithMaxOrder(maxOrder)}
	if f.blankZero || config.BlankAsZero() {
		inOpts = append(inOpts, input.WithBlankAsZero())
	}

	strategyName := config.Strategy()
	var (
		m   *matrix.Dense
		err error
	)
	if f.file != "" {
		doc, derr := input.LoadFile(f.file)
		if derr != nil {
			return nil, nil, derr
		}
		f.steps = f.steps || doc.Steps
		if doc.Strategy != "" {
			strategyName = doc.Strategy
		}
		m, err = doc.Dense(inOpts...)
	} else {
		m, err = input.ParseRows(f.rows, inOpts...)
	}
	if err != nil {
		return nil, nil, err
	}
	if f.iterative {
		strategyName = adjugate.StrategyIterative.String()
	}
	strategy, err := adjugate.ParseStrategy(strategyName)
	if err != nil {
		return nil, nil, err
	}

	a.log.Debug("matrix loaded",
		zap.Int("order", m.Rows()),
		zap.Stringer("strategy", strategy))

	return m, []adjugate.Option{
		adjugate.WithMaxOrder(maxOrder),
		adjugate.WithStrategy(strategy),
		adjugate.WithTracer(tracer.Multi{rec, tracer.NewLogger(a.log, zapcore.DebugLevel)}),
	}, nil
}

// singular reports whether err is the singular-matrix outcome.
func singular(err error) bool { return errors.Is(err, adjugate.ErrSingular) }

func writeLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
