package day02

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func TestParse(t *testing.T) {
	games, err := Parse("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)

	want := []Game{{
		ID: 1,
		Sets: []Set{
			{"blue": 3, "red": 4},
			{"red": 1, "green": 2, "blue": 6},
			{"green": 2},
		},
	}}
	if diff := cmp.Diff(want, games); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSumsRepeatedColours(t *testing.T) {
	games, err := Parse("Game 7: 3 red, 4 red")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), games[0].Sets[0]["red"])
	assert.False(t, games[0].Possible(Set{"red": 6}))
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: three blue",
		"Game 1: 3",
		"Game 1: 3 blue, ",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		var pe *puzzle.ParseError
		assert.ErrorAs(t, err, &pe, in)
	}

	_, err := Parse("")
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}

func TestPower(t *testing.T) {
	games, err := Parse(Sample)
	require.NoError(t, err)

	want := []uint64{48, 12, 1560, 630, 36}
	for i, g := range games {
		assert.Equal(t, want[i], g.Power(), "game %d", g.ID)
	}

	single := Game{ID: 9, Sets: []Set{{"red": 5}}}
	assert.Equal(t, uint64(5), single.Power())
}

func TestLimitsAreFresh(t *testing.T) {
	l := Limits()
	l["red"] = 0
	delete(l, "blue")
	assert.Equal(t, Set{"red": 12, "green": 13, "blue": 14}, Limits())

	got, err := Part1(context.Background(), Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(8), got)
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := Part1(ctx, Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(8), got)

	got, err = Part2(ctx, Sample, puzzle.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(2286), got)
}
