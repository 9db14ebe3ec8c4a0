// Package day06 counts the ways to win boat races.
package day06

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

const day = 6

// MaxTime bounds race durations so that h*(Time-h) cannot overflow 64 bits.
const MaxTime = math.MaxUint32

const Sample = `
Time:      7  15   30
Distance:  9  40  200
`

func init() {
	puzzle.Register(puzzle.Day{
		Number: day,
		Title:  "Wait For It",
		Part1:  Part1,
		Part2:  Part2,
		Samples: []puzzle.Sample{
			{Part: puzzle.Part1, Input: Sample, Want: 288},
			{Part: puzzle.Part2, Input: Sample, Want: 71503},
		},
	})
}

// Race is one race's duration and the record distance to beat.
type Race struct {
	Time     uint64
	Distance uint64
}

// Wins counts hold times h in [0, Time] that travel h*(Time-h) > Distance.
// Every hold time is tried.
func (r Race) Wins(ctx context.Context) (uint64, error) {
	if r.Time > MaxTime {
		return 0, fmt.Errorf("race time %d exceeds %d", r.Time, uint64(MaxTime))
	}
	var wins uint64
	for h := uint64(0); h <= r.Time; h++ {
		if h&0xfffff == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if h*(r.Time-h) > r.Distance {
			wins++
		}
	}
	return wins, nil
}

// Parse reads the Time and Distance rows.
func Parse(input string) ([]Race, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, puzzle.Errorf(day, 0, "expected Time and Distance lines, got %d lines", len(lines))
	}
	timeText, err := puzzle.CutLabel(day, 1, lines[0], "Time")
	if err != nil {
		return nil, err
	}
	distText, err := puzzle.CutLabel(day, 2, lines[1], "Distance")
	if err != nil {
		return nil, err
	}
	times, distances := strings.Fields(timeText), strings.Fields(distText)
	if len(times) != len(distances) {
		return nil, puzzle.Errorf(day, 2, "%d times but %d distances", len(times), len(distances))
	}

	races := make([]Race, 0, len(times))
	for i := range times {
		t, err := parseTime(times[i])
		if err != nil {
			return nil, err
		}
		d, err := puzzle.ParseUint64(day, 2, distances[i])
		if err != nil {
			return nil, err
		}
		races = append(races, Race{Time: t, Distance: d})
	}
	return races, nil
}

func parseTime(tok string) (uint64, error) {
	t, err := puzzle.ParseUint64(day, 1, tok)
	if err != nil {
		return 0, err
	}
	if t > MaxTime {
		return 0, puzzle.Errorf(day, 1, "race time %d exceeds %d", t, uint64(MaxTime))
	}
	return t, nil
}

// Merge reads the digits of every race as one long race.
func Merge(races []Race) (Race, error) {
	var timeDigits, distDigits strings.Builder
	for _, r := range races {
		timeDigits.WriteString(strconv.FormatUint(r.Time, 10))
		distDigits.WriteString(strconv.FormatUint(r.Distance, 10))
	}
	t, err := parseTime(timeDigits.String())
	if err != nil {
		return Race{}, err
	}
	d, err := puzzle.ParseUint64(day, 2, distDigits.String())
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Distance: d}, nil
}

// Part1 multiplies the win counts of every race.
func Part1(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(races) == 0 {
		return 0, puzzle.ErrEmptyInput
	}
	product := uint64(1)
	for _, r := range races {
		w, err := r.Wins(ctx)
		if err != nil {
			return 0, err
		}
		product *= w
	}
	return puzzle.Answer(product), nil
}

// Part2 counts the wins of the merged race.
func Part2(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(races) == 0 {
		return 0, puzzle.ErrEmptyInput
	}
	merged, err := Merge(races)
	if err != nil {
		return 0, err
	}
	w, err := merged.Wins(ctx)
	if err != nil {
		return 0, err
	}
	return puzzle.Answer(w), nil
}
