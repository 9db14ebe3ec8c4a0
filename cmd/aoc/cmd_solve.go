package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
	"aoc2023/internal/render"
	"aoc2023/internal/store"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		part      int
		inputPath string
		workers   int
		strategy  string
		noCheck   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day's puzzle",
		Long: `Solves both parts of a day (or one with --part).

Examples:
  aoc solve 5
  aoc solve 5 --part 2 --strategy brute --workers 8
  aoc solve 6 --input - < races.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupDay(args[0])
			if err != nil {
				return err
			}
			parts, err := partsFor(part)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Solve.Workers = workers
			}
			if strategy != "" {
				a.cfg.Solve.RangeStrategy = strategy
			}
			if noCheck {
				a.cfg.Solve.CheckSamples = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			input, err := a.readInput(cmd, d.Number, inputPath)
			if err != nil {
				return err
			}
			results, err := a.solve(ctx, d, parts, input)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), a.format, results)
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (1 or 2; default both)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file ('-' for stdin; default <inputs.dir>/<day>.input)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Workers for brute-force range scans")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Range strategy: interval or brute")
	cmd.Flags().BoolVar(&noCheck, "no-check", false, "Skip the worked-example checks")
	return cmd
}

// readInput loads the puzzle input from path, stdin ("-") or the configured inputs dir.
func (a *app) readInput(cmd *cobra.Command, day int, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	if path == "" {
		path = a.cfg.InputPath(day)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// solve checks the samples (when enabled), solves each part and journals the answers.
func (a *app) solve(ctx context.Context, d puzzle.Day, parts []puzzle.Part, input string) ([]render.Result, error) {
	opts := a.cfg.Solve.Options()

	if a.cfg.Solve.CheckSamples {
		if err := d.Check(ctx, opts); err != nil {
			return nil, fmt.Errorf("sample check failed: %w", err)
		}
		logging.SolveDebug("day %d samples ok", d.Number)
	}

	journal, err := a.openJournal()
	if err != nil {
		logging.Get(logging.CategoryStore).Warn("answer journal unavailable: %v", err)
	}
	if journal != nil {
		defer journal.Close()
	}

	results := make([]render.Result, 0, len(parts))
	for _, p := range parts {
		timer := logging.StartTimer(logging.CategorySolve, fmt.Sprintf("day %d part %d", d.Number, p))
		answer, err := d.Solve(ctx, p, input, opts)
		elapsed := timer.StopWithThreshold(a.cfg.Solve.GetSlowThreshold())
		if err != nil {
			return nil, fmt.Errorf("day %d part %d: %w", d.Number, p, err)
		}

		run := store.NewRun(d.Number, p, input, answer, elapsed)
		logging.L().Info("solved",
			zap.Int("day", d.Number),
			zap.Int("part", int(p)),
			zap.Uint64("answer", uint64(answer)),
			zap.Duration("elapsed", elapsed),
			zap.String("run", run.ID))

		if journal != nil {
			a.recordRun(ctx, journal, run)
		}
		results = append(results, render.Result{
			Day:     d.Number,
			Title:   d.Title,
			Part:    p,
			Answer:  answer,
			Elapsed: elapsed,
			RunID:   run.ID,
		})
	}
	return results, nil
}

// openJournal returns nil when the journal is disabled.
func (a *app) openJournal() (*store.Journal, error) {
	if !a.cfg.Store.Enabled {
		return nil, nil
	}
	return store.Open(a.cfg.Store.Path)
}

// recordRun journals a run and flags an answer that changed for identical input.
// Journal failures never discard a computed answer.
func (a *app) recordRun(ctx context.Context, journal *store.Journal, run store.Run) {
	log := logging.Get(logging.CategoryStore).With("run", run.ID)

	prev, found, err := journal.LastAnswer(ctx, run.Day, run.Part, run.InputHash)
	if err != nil {
		log.Warn("failed to look up previous answer: %v", err)
	} else if found && prev != run.Answer {
		log.Warn("day %d part %d answer changed for the same input: was %d, now %d",
			run.Day, run.Part, prev, run.Answer)
	}
	if err := journal.Record(ctx, run); err != nil {
		log.Warn("failed to record answer: %v", err)
	}
}
