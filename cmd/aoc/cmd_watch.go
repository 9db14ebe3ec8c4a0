package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
	"aoc2023/internal/render"
	"aoc2023/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-solve a day whenever its input file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupDay(args[0])
			if err != nil {
				return err
			}
			if inputPath == "" {
				inputPath = a.cfg.InputPath(d.Number)
			}
			parts := []puzzle.Part{puzzle.Part1, puzzle.Part2}

			// --timeout bounds each solve, not the watch session.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			run := func(ctx context.Context, path string) {
				if a.timeout > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, a.timeout)
					defer cancel()
				}
				data, err := os.ReadFile(path)
				if err != nil {
					logging.Get(logging.CategoryWatch).Warn("failed to read %s: %v", path, err)
					return
				}
				results, err := a.solve(ctx, d, parts, string(data))
				if err != nil {
					logging.Get(logging.CategoryWatch).Error("%v", err)
					return
				}
				if err := render.Write(cmd.OutOrStdout(), a.format, results); err != nil {
					logging.Get(logging.CategoryWatch).Error("failed to render: %v", err)
				}
			}

			w, err := watch.New(inputPath, a.cfg.Watch.GetDebounce(), run)
			if err != nil {
				return err
			}
			defer w.Stop()

			if _, err := os.Stat(inputPath); err == nil {
				run(ctx, inputPath)
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			logging.Watch("watch ended: %v", ctx.Err())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (default <inputs.dir>/<day>.input)")
	return cmd
}
