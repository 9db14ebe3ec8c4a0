package day04

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func TestParse(t *testing.T) {
	cards, err := Parse("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)

	want := []Card{{
		Number:  1,
		Winning: []uint32{41, 48, 83, 86, 17},
		Have:    []uint32{83, 86, 6, 31, 17, 9, 48, 53},
	}}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"Card 1 41 | 41",
		"Card 1: 41 48",
		"Card one: 41 | 41",
		"Ticket 1: 41 | 41",
		"Card 1: 41 x | 41",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		var pe *puzzle.ParseError
		assert.ErrorAs(t, err, &pe, in)
	}
	_, err := Parse("  ")
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}

func TestPoints(t *testing.T) {
	cards, err := Parse(Sample)
	require.NoError(t, err)

	wantMatches := []int{4, 2, 2, 1, 0, 0}
	wantPoints := []uint64{8, 2, 2, 1, 0, 0}
	for i, c := range cards {
		assert.Equal(t, wantMatches[i], c.Matches(), "card %d", c.Number)
		assert.Equal(t, wantPoints[i], c.Points(), "card %d", c.Number)
	}
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := Part1(ctx, Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(13), got)

	got, err = Part2(ctx, Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(30), got)
}

func TestPart2CopiesStopAtLastCard(t *testing.T) {
	got, err := Part2(context.Background(), "Card 1: 1 2 3 | 1 2 3\nCard 2: 5 | 6", puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(3), got)
}
