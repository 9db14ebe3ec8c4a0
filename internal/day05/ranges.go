package day05

import (
	"context"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
)

// bruteChunk is the number of consecutive seeds one worker scans per task.
const bruteChunk = 1 << 16

// MinRangeLocation returns the lowest location over every seed covered by the
// seed ranges. The interval strategy propagates range endpoints through the
// stages; the brute strategy maps every seed individually on a worker pool.
// Both return the same minimum.
func (a *Almanac) MinRangeLocation(ctx context.Context, opts puzzle.Options) (uint32, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if err := a.checkRules(); err != nil {
		return 0, err
	}

	switch opts.RangeStrategy {
	case "", puzzle.StrategyInterval:
		return a.minInterval(ranges), nil
	case puzzle.StrategyBrute:
		return a.minBrute(ctx, ranges, opts.Workers)
	default:
		return 0, fmt.Errorf("unknown range strategy %q", opts.RangeStrategy)
	}
}

// span is a half-open [lo, hi) interval in 64 bits so that an end of exactly
// 2^32 stays representable.
type span struct {
	lo, hi uint64
}

// mapSpans pushes whole intervals through the stage. Each rule claims the part
// of the still-unmapped intervals it covers, in declared order, so overlapping
// rules resolve exactly as Map does. Leftovers pass through unchanged.
func (s Stage) mapSpans(in []span) []span {
	pending := in
	var out []span
	for _, r := range s.Rules {
		if r.Len == 0 {
			continue
		}
		rlo, rhi := uint64(r.Src), r.end()
		var rest []span
		for _, sp := range pending {
			if sp.lo < rlo {
				rest = append(rest, span{sp.lo, min(sp.hi, rlo)})
			}
			if lo, hi := max(sp.lo, rlo), min(sp.hi, rhi); lo < hi {
				out = append(out, span{lo - rlo + uint64(r.Dst), hi - rlo + uint64(r.Dst)})
			}
			if sp.hi > rhi {
				rest = append(rest, span{max(sp.lo, rhi), sp.hi})
			}
		}
		pending = rest
		if len(pending) == 0 {
			break
		}
	}
	return append(out, pending...)
}

func (a *Almanac) minInterval(ranges []SeedRange) uint32 {
	spans := make([]span, 0, len(ranges))
	for _, r := range ranges {
		spans = append(spans, span{uint64(r.Start), r.end()})
	}
	for i := range a.Stages {
		spans = a.Stages[i].mapSpans(spans)
	}

	best := uint64(math.MaxUint64)
	for _, sp := range spans {
		best = min(best, sp.lo)
	}
	logging.SolveDebug("day05: interval strategy ended with %d spans", len(spans))
	return uint32(best)
}

func (a *Almanac) minBrute(ctx context.Context, ranges []SeedRange, workers int) (uint32, error) {
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu   sync.Mutex
		best = uint32(math.MaxUint32)
	)
	tasks := 0
schedule:
	for _, r := range ranges {
		for lo := uint64(r.Start); lo < r.end(); lo += bruteChunk {
			if gctx.Err() != nil {
				break schedule
			}
			hi := min(lo+bruteChunk, r.end())
			tasks++
			lo := lo
			g.Go(func() error {
				local := uint32(math.MaxUint32)
				for v := lo; v < hi; v++ {
					if (v-lo)&0xfff == 0 {
						if err := gctx.Err(); err != nil {
							return err
						}
					}
					if loc := a.Location(uint32(v)); loc < local {
						local = loc
					}
				}
				mu.Lock()
				best = min(best, local)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	// A cancellation that no task observed still invalidates the result.
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	logging.SolveDebug("day05: brute strategy scanned %d chunks on %d workers", tasks, workers)
	return best, nil
}
