package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aoc2023/internal/puzzle"
	"aoc2023/internal/render"
	"aoc2023/internal/store"
)

func (a *app) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [day]",
		Short: "Show journaled answers, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := 0
			if len(args) == 1 {
				d, err := lookupDay(args[0])
				if err != nil {
					return err
				}
				day = d.Number
			}
			if !a.cfg.Store.Enabled {
				return fmt.Errorf("answer journal is disabled (store.enabled: false)")
			}

			journal, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer journal.Close()

			runs, err := journal.History(cmd.Context(), day, limit)
			if err != nil {
				return err
			}

			if a.format != render.FormatText {
				results := make([]render.Result, 0, len(runs))
				for _, r := range runs {
					res := render.Result{Day: r.Day, Part: r.Part, Answer: r.Answer, Elapsed: r.Duration, RunID: r.ID}
					if d, ok := puzzle.Lookup(r.Day); ok {
						res.Title = d.Title
					}
					results = append(results, res)
				}
				return render.Write(cmd.OutOrStdout(), a.format, results)
			}

			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  day %d part %d: %d  (%s, input %.8s, run %s)\n",
					r.CreatedAt.Format(time.RFC3339), r.Day, r.Part, r.Answer,
					r.Duration.Round(time.Microsecond), r.InputHash, r.ID)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rows (0 for all)")
	return cmd
}
