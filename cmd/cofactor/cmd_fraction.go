// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cofactor/fraction"
)

func newFractionCmd() *cobra.Command {
	var maxDen int
	cmd := &cobra.Command{
		Use:   "fraction VALUE...",
		Short: "Approximate decimals by reduced fractions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("fraction: %q is not a number", arg)
				}
				fr, err := fraction.ApproximateBounded(v, maxDen)
				if err != nil {
					return err
				}
				writeLine(cmd.OutOrStdout(), "%s = %s", arg, fr)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDen, "max-den", fraction.MaxDenominator, "largest denominator tried")

	return cmd
}
