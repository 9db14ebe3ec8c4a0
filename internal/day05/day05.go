package day05

import (
	"context"

	"aoc2023/internal/puzzle"
)

// Sample is the worked example from the puzzle text.
const Sample = `
seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func init() {
	puzzle.Register(puzzle.Day{
		Number: day,
		Title:  "If You Give A Seed A Fertilizer",
		Part1:  Part1,
		Part2:  Part2,
		Samples: []puzzle.Sample{
			{Part: puzzle.Part1, Input: Sample, Want: 35},
			{Part: puzzle.Part2, Input: Sample, Want: 46},
		},
	})
}

// Part1 is the lowest location for the listed seeds.
func Part1(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	loc, err := a.MinLocation()
	if err != nil {
		return 0, err
	}
	return puzzle.Answer(loc), nil
}

// Part2 is the lowest location when seeds are read as (start, length) pairs.
func Part2(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	loc, err := a.MinRangeLocation(ctx, opts)
	if err != nil {
		return 0, err
	}
	return puzzle.Answer(loc), nil
}
