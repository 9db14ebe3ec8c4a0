package puzzle

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lenPart(ctx context.Context, input string, opts Options) (Answer, error) {
	if input == "" {
		return 0, ErrEmptyInput
	}
	return Answer(len(input)), nil
}

func TestDaySolve(t *testing.T) {
	d := Day{Number: 90, Part1: lenPart}

	got, err := d.Solve(context.Background(), Part1, "abcd", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Answer(4), got)

	_, err = d.Solve(context.Background(), Part2, "abcd", DefaultOptions())
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = d.Solve(context.Background(), Part(3), "abcd", DefaultOptions())
	assert.Error(t, err)
}

func TestDayCheck(t *testing.T) {
	t.Run("all samples pass", func(t *testing.T) {
		d := Day{Number: 90, Part1: lenPart, Samples: []Sample{{Part: Part1, Input: "xyz", Want: 3}}}
		assert.NoError(t, d.Check(context.Background(), DefaultOptions()))
	})

	t.Run("mismatch is reported", func(t *testing.T) {
		d := Day{Number: 90, Part1: lenPart, Samples: []Sample{{Part: Part1, Input: "xyz", Want: 4}}}
		err := d.Check(context.Background(), DefaultOptions())
		var mismatch *SampleMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, Answer(3), mismatch.Got)
		assert.Equal(t, Answer(4), mismatch.Want)
	})

	t.Run("solver error is wrapped", func(t *testing.T) {
		d := Day{Number: 90, Part1: lenPart, Samples: []Sample{{Part: Part1, Input: "", Want: 0}}}
		assert.ErrorIs(t, d.Check(context.Background(), DefaultOptions()), ErrEmptyInput)
	})
}

func TestRegistry(t *testing.T) {
	Register(Day{Number: 97, Title: "b"})
	Register(Day{Number: 96, Title: "a"})

	d, ok := Lookup(97)
	require.True(t, ok)
	assert.Equal(t, "b", d.Title)

	_, ok = Lookup(95)
	assert.False(t, ok)

	days := Days()
	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Number, days[i].Number)
	}

	assert.Panics(t, func() { Register(Day{Number: 97}) })
	assert.Panics(t, func() { Register(Day{Number: 0}) })
}

func TestBlocks(t *testing.T) {
	input := "\r\nseeds: 1 2\r\n\r\na map:\r\n1 2 3\r\n  \r\n\r\nb map:\r\n4 5 6\r\n"
	blocks := Blocks(input)
	assert.Equal(t, []Block{
		{Line: 2, Text: "seeds: 1 2"},
		{Line: 4, Text: "a map:\n1 2 3"},
		{Line: 8, Text: "b map:\n4 5 6"},
	}, blocks)
	assert.Empty(t, Blocks(" \n\t\n"))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, Lines("\n  one \n\n two\n"))
	assert.Empty(t, Lines("   \n\n"))
}

func TestParseHelpers(t *testing.T) {
	n, err := ParseUint32(5, 2, "4294967295")
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), n)

	_, err = ParseUint32(5, 2, "4294967296")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Day)
	assert.Equal(t, 2, pe.Line)
	assert.ErrorIs(t, err, strconv.ErrRange)

	nums, err := Uint32s(1, 1, " 7  15   30 ")
	require.NoError(t, err)
	assert.Equal(t, []uint32{7, 15, 30}, nums)

	_, err = Uint32s(1, 1, "7 x")
	assert.ErrorAs(t, err, &pe)

	rest, err := CutLabel(6, 1, "Time:  7 15", "Time")
	require.NoError(t, err)
	assert.Equal(t, "7 15", rest)

	_, err = CutLabel(6, 1, "Time 7 15", "Time")
	assert.ErrorAs(t, err, &pe)
	_, err = CutLabel(6, 1, "Distance: 9", "Time")
	assert.ErrorAs(t, err, &pe)
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "parse error: day 5: line 3: bad", Errorf(5, 3, "bad").Error())
	assert.Equal(t, "parse error: day 5: bad", Errorf(5, 0, "bad").Error())
	assert.Equal(t, "parse error: bad", Errorf(0, 0, "bad").Error())
}
