package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	_ "aoc2023/internal/day01"
	_ "aoc2023/internal/day02"
	_ "aoc2023/internal/day04"
	_ "aoc2023/internal/day05"
	_ "aoc2023/internal/day06"
	"aoc2023/internal/puzzle"
)

// lookupDay accepts "5", "05" or "day5".
func lookupDay(arg string) (puzzle.Day, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "day"))
	if err != nil {
		return puzzle.Day{}, fmt.Errorf("invalid day %q", arg)
	}
	d, ok := puzzle.Lookup(n)
	if !ok {
		return puzzle.Day{}, fmt.Errorf("day %d is not registered (see 'aoc days')", n)
	}
	return d, nil
}

// partsFor expands the --part flag; 0 means both parts.
func partsFor(part int) ([]puzzle.Part, error) {
	switch part {
	case 0:
		return []puzzle.Part{puzzle.Part1, puzzle.Part2}, nil
	case 1, 2:
		return []puzzle.Part{puzzle.Part(part)}, nil
	default:
		return nil, fmt.Errorf("invalid part %d (want 1 or 2)", part)
	}
}

func (a *app) daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range puzzle.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", d.Number, d.Title)
			}
			return nil
		},
	}
}
