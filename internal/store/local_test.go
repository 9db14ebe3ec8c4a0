package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func openMemory(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestHashInputNormalises(t *testing.T) {
	a := HashInput("seeds: 1 2\n\nx map:\n1 2 3\n")
	b := HashInput("\r\nseeds: 1 2\r\n\r\nx map:\r\n1 2 3\r\n\r\n")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashInput("seeds: 1 3"))
}

func TestNewRun(t *testing.T) {
	r := NewRun(5, puzzle.Part2, "input", 46, time.Millisecond)
	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.Equal(t, HashInput("input"), r.InputHash)
	assert.Equal(t, puzzle.Answer(46), r.Answer)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestRecordAndLastAnswer(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	hash := HashInput("sample")
	_, found, err := j.LastAnswer(ctx, 5, puzzle.Part1, hash)
	require.NoError(t, err)
	assert.False(t, found)

	first := NewRun(5, puzzle.Part1, "sample", 35, time.Millisecond)
	require.NoError(t, j.Record(ctx, first))
	second := NewRun(5, puzzle.Part1, "sample", 36, time.Millisecond)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, j.Record(ctx, second))
	require.NoError(t, j.Record(ctx, NewRun(5, puzzle.Part2, "sample", 46, time.Millisecond)))

	got, found, err := j.LastAnswer(ctx, 5, puzzle.Part1, hash)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, puzzle.Answer(36), got)

	_, found, err = j.LastAnswer(ctx, 5, puzzle.Part1, HashInput("other"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRecordRejectsMissingID(t *testing.T) {
	j := openMemory(t)
	assert.Error(t, j.Record(context.Background(), Run{Day: 1}))
}

func TestRecordRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)
	r := NewRun(1, puzzle.Part1, "x", 1, 0)
	require.NoError(t, j.Record(ctx, r))
	assert.Error(t, j.Record(ctx, r))
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	base := time.Date(2023, 12, 5, 6, 0, 0, 0, time.UTC)
	for i, day := range []int{5, 6, 5} {
		r := NewRun(day, puzzle.Part1, "in", puzzle.Answer(i), time.Duration(i)*time.Millisecond)
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, j.Record(ctx, r))
	}

	all, err := j.History(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, puzzle.Answer(2), all[0].Answer)
	assert.Equal(t, base.Add(2*time.Minute), all[0].CreatedAt)
	assert.Equal(t, 2*time.Millisecond, all[0].Duration)

	day5, err := j.History(ctx, 5, 0)
	require.NoError(t, err)
	require.Len(t, day5, 2)
	for _, r := range day5 {
		assert.Equal(t, 5, r.Day)
		assert.Equal(t, puzzle.Part1, r.Part)
	}

	limited, err := j.History(ctx, 0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestOpenFilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "answers.db")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(ctx, NewRun(6, puzzle.Part2, "races", 71503, time.Second)))
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()
	assert.Equal(t, path, j.Path())

	runs, err := j.History(ctx, 6, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, puzzle.Answer(71503), runs[0].Answer)
}
