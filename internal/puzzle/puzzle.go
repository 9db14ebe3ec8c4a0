// Package puzzle holds the day registry shared by every solver along with the
// error types and parsing helpers they have in common.
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Answer is the numeric result of one puzzle part.
type Answer uint64

// Part selects the first or second half of a day.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// Range strategies understood by solvers that enumerate ranges.
const (
	StrategyInterval = "interval"
	StrategyBrute    = "brute"
)

// Options tune how a solver computes, never what it computes.
type Options struct {
	Workers       int
	RangeStrategy string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Workers: 4, RangeStrategy: StrategyInterval}
}

// PartFunc solves one part of a day for the given raw input.
type PartFunc func(ctx context.Context, input string, opts Options) (Answer, error)

// Sample is a worked example with its published answer.
type Sample struct {
	Part  Part
	Input string
	Want  Answer
}

// Day describes one registered puzzle.
type Day struct {
	Number  int
	Title   string
	Part1   PartFunc
	Part2   PartFunc
	Samples []Sample
}

// Solve runs the requested part.
func (d Day) Solve(ctx context.Context, part Part, input string, opts Options) (Answer, error) {
	var fn PartFunc
	switch part {
	case Part1:
		fn = d.Part1
	case Part2:
		fn = d.Part2
	default:
		return 0, fmt.Errorf("day %d: unknown part %d", d.Number, part)
	}
	if fn == nil {
		return 0, fmt.Errorf("day %d part %d: %w", d.Number, part, ErrNotImplemented)
	}
	return fn(ctx, input, opts)
}

// Check runs every sample and reports the first mismatch.
func (d Day) Check(ctx context.Context, opts Options) error {
	for _, s := range d.Samples {
		got, err := d.Solve(ctx, s.Part, s.Input, opts)
		if err != nil {
			return fmt.Errorf("day %d part %d sample: %w", d.Number, s.Part, err)
		}
		if got != s.Want {
			return &SampleMismatchError{Day: d.Number, Part: s.Part, Got: got, Want: s.Want}
		}
	}
	return nil
}

var (
	registryMu sync.RWMutex
	registry   = make(map[int]Day)
)

// Register adds a day to the registry. It is meant to be called from init and
// panics on programmer errors (zero day, duplicate registration).
func Register(d Day) {
	if d.Number <= 0 {
		panic(fmt.Sprintf("puzzle: invalid day number %d", d.Number))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	registry[d.Number] = d
}

// Lookup returns the registered day n.
func Lookup(n int) (Day, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[n]
	return d, ok
}

// Days returns all registered days ordered by number.
func Days() []Day {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Day, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
