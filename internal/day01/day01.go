// Package day01 recovers calibration values from lines of text.
package day01

import (
	"context"
	"strings"

	"aoc2023/internal/puzzle"
)

const day = 1

const (
	SamplePart1 = `
1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`
	SamplePart2 = `
two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: day,
		Title:  "Trebuchet?!",
		Part1:  Part1,
		Part2:  Part2,
		Samples: []puzzle.Sample{
			{Part: puzzle.Part1, Input: SamplePart1, Want: 142},
			{Part: puzzle.Part2, Input: SamplePart2, Want: 281},
		},
	})
}

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i]. Spelled-out digits only count
// when spelled is set.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Calibration combines the first and last digit of line. Spelled digits may
// overlap ("eightwo" holds 8 and 2).
func Calibration(line string, spelled bool) (int, bool) {
	first, last, found := 0, 0, false
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	return first*10 + last, found
}

func sum(input string, spelled bool) (puzzle.Answer, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return 0, puzzle.ErrEmptyInput
	}
	var total puzzle.Answer
	for i, l := range lines {
		v, ok := Calibration(l, spelled)
		if !ok {
			return 0, puzzle.Errorf(day, i+1, "no digit in %q", l)
		}
		total += puzzle.Answer(v)
	}
	return total, nil
}

// Part1 sums calibration values built from numeric digits.
func Part1(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	return sum(input, false)
}

// Part2 also accepts digits spelled out as words.
func Part2(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	return sum(input, true)
}
