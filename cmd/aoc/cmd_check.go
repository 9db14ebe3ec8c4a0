package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"aoc2023/internal/puzzle"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [day]",
		Short: "Run the worked examples for one day or all days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := puzzle.Days()
			if len(args) == 1 {
				d, err := lookupDay(args[0])
				if err != nil {
					return err
				}
				days = []puzzle.Day{d}
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			var errs []error
			for _, d := range days {
				if err := d.Check(ctx, a.cfg.Solve.Options()); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "day %d: FAIL (%v)\n", d.Number, err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "day %d: ok\n", d.Number)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d sample check(s) failed: %w", len(errs), errors.Join(errs...))
			}
			return nil
		},
	}
}
