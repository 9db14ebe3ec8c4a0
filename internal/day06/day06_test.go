package day06

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func TestParse(t *testing.T) {
	races, err := Parse(Sample)
	require.NoError(t, err)

	want := []Race{{7, 9}, {15, 40}, {30, 200}}
	if diff := cmp.Diff(want, races); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	var pe *puzzle.ParseError
	inputs := []string{
		"Time: 7 15",
		"Time: 7 15\nDistance: 9",
		"Time 7\nDistance: 9",
		"Time: 7\nRecord: 9",
		"Time: 7\nDistance: x",
		"Time: -7\nDistance: 9",
		"Time: 4294967296\nDistance: 9",
		"Time: 18446744073709551615\nDistance: 9",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		assert.ErrorAs(t, err, &pe, in)
	}
}

func TestWins(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		race Race
		want uint64
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		{Race{0, 0}, 0},
		{Race{3, 100}, 0},
	}
	for _, tt := range tests {
		got, err := tt.race.Wins(ctx)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%+v", tt.race)
	}
}

func TestWinsTimeBound(t *testing.T) {
	ctx := context.Background()

	_, err := Race{Time: MaxTime + 1, Distance: 0}.Wins(ctx)
	assert.Error(t, err)
	_, err = Race{Time: math.MaxUint64, Distance: 0}.Wins(ctx)
	assert.Error(t, err)
}

func TestWinsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Race{Time: 10, Distance: 1}.Wins(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerge(t *testing.T) {
	merged, err := Merge([]Race{{7, 9}, {15, 40}, {30, 200}})
	require.NoError(t, err)
	assert.Equal(t, Race{Time: 71530, Distance: 940200}, merged)

	_, err = Merge([]Race{{4294967, 9}, {2960, 40}})
	var pe *puzzle.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := Part1(ctx, Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(288), got)

	got, err = Part2(ctx, Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(71503), got)

	_, err = Part1(ctx, "Time:\nDistance:", puzzle.DefaultOptions())
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}
