// Package day04 scores scratchcards.
package day04

import (
	"context"
	"strings"

	"aoc2023/internal/puzzle"
)

const day = 4

const Sample = `
Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func init() {
	puzzle.Register(puzzle.Day{
		Number: day,
		Title:  "Scratchcards",
		Part1:  Part1,
		Part2:  Part2,
		Samples: []puzzle.Sample{
			{Part: puzzle.Part1, Input: Sample, Want: 13},
			{Part: puzzle.Part2, Input: Sample, Want: 30},
		},
	})
}

// Card holds the winning numbers and the numbers scratched off.
type Card struct {
	Number  uint32
	Winning []uint32
	Have    []uint32
}

// Matches counts the scratched numbers that are winning numbers. Duplicates
// among the scratched numbers count each time.
func (c Card) Matches() int {
	winning := make(map[uint32]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	matches := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			matches++
		}
	}
	return matches
}

// Points doubles for every match after the first.
func (c Card) Points() uint64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// Parse reads one card per non-empty line.
func Parse(input string) ([]Card, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	cards := make([]Card, 0, len(lines))
	for i, l := range lines {
		c, err := parseCard(i+1, l)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(line int, s string) (Card, error) {
	head, body, ok := strings.Cut(s, ":")
	if !ok {
		return Card{}, puzzle.Errorf(day, line, "missing ':'")
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, puzzle.Errorf(day, line, "expected \"Card <n>\", got %q", head)
	}
	num, err := puzzle.ParseUint32(day, line, fields[1])
	if err != nil {
		return Card{}, err
	}
	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, puzzle.Errorf(day, line, "missing '|'")
	}
	winning, err := puzzle.Uint32s(day, line, winText)
	if err != nil {
		return Card{}, err
	}
	have, err := puzzle.Uint32s(day, line, haveText)
	if err != nil {
		return Card{}, err
	}
	return Card{Number: num, Winning: winning, Have: have}, nil
}

// Part1 totals the points of every card.
func Part1(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var total puzzle.Answer
	for _, c := range cards {
		total += puzzle.Answer(c.Points())
	}
	return total, nil
}

// Part2 counts cards once every card has won copies of the cards after it.
// Copies never extend past the last card.
func Part2(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	copies := make([]uint64, len(cards))
	var total puzzle.Answer
	for i, c := range cards {
		copies[i]++
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += puzzle.Answer(copies[i])
	}
	return total, nil
}
