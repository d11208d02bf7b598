// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/fraction"
	"github.com/katalvlaran/cofactor/render"
	"github.com/katalvlaran/cofactor/tracer"
)

func newInvertCmd(a *app) *cobra.Command {
	var (
		f      matrixFlags
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert a square matrix and show the adjoint method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := tracer.NewRecorder()
			m, opts, err := f.load(a, rec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			sol, err := adjugate.Solve(m, opts...)
			if err != nil {
				a.log.Debug("inversion failed", zap.Error(err))
			}
			switch {
			case f.html:
				return render.HTML(out, rec.Events(), err)
			case f.steps:
				if rerr := render.Text(out, rec.Events()); rerr != nil {
					return rerr
				}
				if err != nil {
					return err
				}
				writeLine(out, "\nDeterminant = %s", fraction.Format(sol.Determinant))
				return nil
			case err != nil:
				return err
			}

			writeLine(out, "Original Matrix")
			writeLine(out, "%s", render.Matrix(m))
			writeLine(out, "Determinant = %s", fraction.Format(sol.Determinant))
			writeLine(out, "Inverse Matrix")
			writeLine(out, "%s", render.Matrix(sol.Inverse))
			if verify {
				res, err := adjugate.Residual(m, sol.Inverse)
				if err != nil {
					return err
				}
				writeLine(out, "Residual max|A·A⁻¹ - I| = %.3g", res)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&verify, "verify", false, "check A·A⁻¹ against the identity")

	return cmd
}
