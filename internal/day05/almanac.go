// Package day05 maps seeds through the seven almanac stages (seed-to-soil
// through humidity-to-location) and finds the lowest location for individual
// seeds or for seed ranges.
package day05

import (
	"fmt"
	"strings"

	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
)

const day = 5

// StageNames lists the stages in pipeline order.
var StageNames = [NumStages]string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// NumStages is the fixed length of the pipeline.
const NumStages = 7

// domainEnd is one past the largest value a seed or rule endpoint may take.
const domainEnd = uint64(1) << 32

// Rule translates the half-open source range [Src, Src+Len) by Dst-Src.
type Rule struct {
	Dst uint32
	Src uint32
	Len uint32
}

// NewRule builds a rule from the input column order (destination, source, length).
func NewRule(dst, src, length uint32) Rule {
	return Rule{Dst: dst, Src: src, Len: length}
}

// end is the exclusive upper bound of the source range. Parse rejects rules
// where it exceeds the 32-bit domain.
func (r Rule) end() uint64 {
	return uint64(r.Src) + uint64(r.Len)
}

// Contains reports whether v falls in the rule's source range.
func (r Rule) Contains(v uint32) bool {
	return v >= r.Src && uint64(v) < r.end()
}

// Apply translates v, which must be contained in the rule.
func (r Rule) Apply(v uint32) uint32 {
	return r.Dst + (v - r.Src)
}

// Stage is one named remap table. Rules are consulted in declared order and
// the first one containing the value wins.
type Stage struct {
	Name  string
	Rules []Rule
}

// Map returns v translated by the first matching rule, or v itself.
func (s Stage) Map(v uint32) uint32 {
	for _, r := range s.Rules {
		if r.Contains(v) {
			return r.Apply(v)
		}
	}
	return v
}

// Almanac is the parsed puzzle: seed values plus the seven stages.
type Almanac struct {
	Seeds  []uint32
	Stages [NumStages]Stage
}

// Location threads seed through every stage in order.
func (a *Almanac) Location(seed uint32) uint32 {
	v := seed
	for i := range a.Stages {
		v = a.Stages[i].Map(v)
	}
	return v
}

// MinLocation returns the lowest location over the individual seed values.
func (a *Almanac) MinLocation() (uint32, error) {
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("no seeds: %w", puzzle.ErrEmptyInput)
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		if loc := a.Location(s); loc < best {
			best = loc
		}
	}
	return best, nil
}

// SeedRange is a half-open [Start, Start+Len) run of seeds.
type SeedRange struct {
	Start uint32
	Len   uint32
}

func (r SeedRange) end() uint64 {
	return uint64(r.Start) + uint64(r.Len)
}

// SeedRanges groups the seed values into (start, length) pairs.
func (a *Almanac) SeedRanges() ([]SeedRange, error) {
	if len(a.Seeds) == 0 {
		return nil, fmt.Errorf("no seeds: %w", puzzle.ErrEmptyInput)
	}
	if len(a.Seeds)%2 != 0 {
		return nil, puzzle.Errorf(day, 0, "seed ranges need an even number of values, got %d", len(a.Seeds))
	}
	ranges := make([]SeedRange, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r := SeedRange{Start: a.Seeds[i], Len: a.Seeds[i+1]}
		if r.Len == 0 {
			return nil, fmt.Errorf("seed range starting at %d has zero length: %w", r.Start, puzzle.ErrEmptyInput)
		}
		if r.end() > domainEnd {
			return nil, puzzle.Errorf(day, 0, "seed range %d+%d runs past %d", r.Start, r.Len, uint64(domainEnd-1))
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Parse reads the seed line followed by the seven stage blocks.
func Parse(input string) (*Almanac, error) {
	timer := logging.StartTimer(logging.CategoryParse, "day05.Parse")
	defer timer.Stop()

	blocks := puzzle.Blocks(input)
	if len(blocks) != NumStages+1 {
		return nil, puzzle.Errorf(day, 0, "expected %d blocks (seeds + %d maps), got %d", NumStages+1, NumStages, len(blocks))
	}

	seedBlock := blocks[0]
	seedText, err := puzzle.CutLabel(day, seedBlock.Line, seedBlock.Text, "seeds")
	if err != nil {
		return nil, err
	}
	if strings.Contains(seedText, "\n") {
		return nil, puzzle.Errorf(day, seedBlock.Line, "seed list must be a single line")
	}
	seeds, err := puzzle.Uint32s(day, seedBlock.Line, seedText)
	if err != nil {
		return nil, err
	}

	a := &Almanac{Seeds: seeds}
	for i, block := range blocks[1:] {
		stage, err := parseStage(StageNames[i], block)
		if err != nil {
			return nil, err
		}
		a.Stages[i] = stage
	}

	logging.Get(logging.CategoryParse).Debug("day05: parsed %d seeds, %d rules", len(a.Seeds), a.ruleCount())
	return a, nil
}

func parseStage(name string, block puzzle.Block) (Stage, error) {
	lines := strings.Split(block.Text, "\n")
	header := lines[0]
	label, ok := strings.CutSuffix(header, ":")
	if !ok {
		return Stage{}, puzzle.Errorf(day, block.Line, "missing ':' in map header %q", header)
	}
	label, ok = strings.CutSuffix(label, " map")
	if !ok {
		return Stage{}, puzzle.Errorf(day, block.Line, "expected \"<name> map:\", got %q", header)
	}
	if label != name {
		return Stage{}, puzzle.Errorf(day, block.Line, "expected %q map, got %q", name, label)
	}

	stage := Stage{Name: name, Rules: make([]Rule, 0, len(lines)-1)}
	for i, l := range lines[1:] {
		lineNo := block.Line + 1 + i
		fields := strings.Fields(l)
		if len(fields) != 3 {
			return Stage{}, puzzle.Errorf(day, lineNo, "expected 3 numbers, got %d", len(fields))
		}
		var nums [3]uint32
		for j, f := range fields {
			n, err := puzzle.ParseUint32(day, lineNo, f)
			if err != nil {
				return Stage{}, err
			}
			nums[j] = n
		}
		r := NewRule(nums[0], nums[1], nums[2])
		if err := r.checkDomain(); err != nil {
			return Stage{}, puzzle.Errorf(day, lineNo, "%v", err)
		}
		stage.Rules = append(stage.Rules, r)
	}
	return stage, nil
}

// checkDomain rejects rules whose source or destination range runs past
// the largest 32-bit value.
func (r Rule) checkDomain() error {
	if r.end() > domainEnd {
		return fmt.Errorf("source range %d+%d runs past %d", r.Src, r.Len, uint64(domainEnd-1))
	}
	if uint64(r.Dst)+uint64(r.Len) > domainEnd {
		return fmt.Errorf("destination range %d+%d runs past %d", r.Dst, r.Len, uint64(domainEnd-1))
	}
	return nil
}

// checkRules applies checkDomain to every rule of every stage.
func (a *Almanac) checkRules() error {
	for _, s := range a.Stages {
		for _, r := range s.Rules {
			if err := r.checkDomain(); err != nil {
				return puzzle.Errorf(day, 0, "%s map: %v", s.Name, err)
			}
		}
	}
	return nil
}

func (a *Almanac) ruleCount() int {
	n := 0
	for _, s := range a.Stages {
		n += len(s.Rules)
	}
	return n
}
