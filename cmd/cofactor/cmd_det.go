// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/fraction"
	"github.com/katalvlaran/cofactor/render"
	"github.com/katalvlaran/cofactor/tracer"
)

func newDetCmd(a *app) *cobra.Command {
	var f matrixFlags
	cmd := &cobra.Command{
		Use:   "det",
		Short: "Compute a determinant by cofactor expansion along the first row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := tracer.NewRecorder()
			m, opts, err := f.load(a, rec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			det, err := adjugate.Determinant(m, opts...)
			switch {
			case f.html:
				return render.HTML(out, rec.Events(), err)
			case err != nil:
				return err
			case f.steps:
				if err = render.Text(out, rec.Events()); err != nil {
					return err
				}
			}
			writeLine(out, "Determinant = %s", fraction.Format(det))
			return nil
		},
	}
	f.register(cmd)

	return cmd
}
