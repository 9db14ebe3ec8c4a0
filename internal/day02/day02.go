// Package day02 scores games of cubes drawn from a bag.
package day02

import (
	"context"
	"strings"

	"aoc2023/internal/puzzle"
)

const day = 2

const Sample = `
Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func init() {
	puzzle.Register(puzzle.Day{
		Number: day,
		Title:  "Cube Conundrum",
		Part1:  Part1,
		Part2:  Part2,
		Samples: []puzzle.Sample{
			{Part: puzzle.Part1, Input: Sample, Want: 8},
			{Part: puzzle.Part2, Input: Sample, Want: 2286},
		},
	})
}

// Set is one handful of cubes, keyed by colour. Repeated colours within a
// handful are summed.
type Set map[string]uint32

// Game is a numbered sequence of handfuls.
type Game struct {
	ID   uint32
	Sets []Set
}

// Limits returns the bag content Part1 checks against. Each call returns a
// fresh set.
func Limits() Set {
	return Set{"red": 12, "green": 13, "blue": 14}
}

// Possible reports whether every handful fits within limits. Colours missing
// from limits are unconstrained.
func (g Game) Possible(limits Set) bool {
	for _, s := range g.Sets {
		for color, n := range s {
			if limit, ok := limits[color]; ok && n > limit {
				return false
			}
		}
	}
	return true
}

// Power is the product of the per-colour maxima across handfuls. Colours
// never drawn do not contribute.
func (g Game) Power() uint64 {
	need := make(map[string]uint32)
	for _, s := range g.Sets {
		for color, n := range s {
			if n > need[color] {
				need[color] = n
			}
		}
	}
	power := uint64(1)
	for _, n := range need {
		if n > 0 {
			power *= uint64(n)
		}
	}
	return power
}

// Parse reads one game per non-empty line.
func Parse(input string) ([]Game, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	games := make([]Game, 0, len(lines))
	for i, l := range lines {
		g, err := parseGame(i+1, l)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line int, s string) (Game, error) {
	head, body, ok := strings.Cut(s, ":")
	if !ok {
		return Game{}, puzzle.Errorf(day, line, "missing ':'")
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, puzzle.Errorf(day, line, "expected \"Game <id>\", got %q", head)
	}
	id, err := puzzle.ParseUint32(day, line, strings.TrimSpace(idText))
	if err != nil {
		return Game{}, err
	}

	g := Game{ID: id}
	for _, handful := range strings.Split(body, ";") {
		set := make(Set)
		for _, draw := range strings.Split(handful, ",") {
			fields := strings.Fields(draw)
			if len(fields) != 2 {
				return Game{}, puzzle.Errorf(day, line, "expected \"<count> <colour>\", got %q", strings.TrimSpace(draw))
			}
			n, err := puzzle.ParseUint32(day, line, fields[0])
			if err != nil {
				return Game{}, err
			}
			set[fields[1]] += n
		}
		g.Sets = append(g.Sets, set)
	}
	return g, nil
}

// Part1 sums the ids of games possible with Limits().
func Part1(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	limits := Limits()
	var total puzzle.Answer
	for _, g := range games {
		if g.Possible(limits) {
			total += puzzle.Answer(g.ID)
		}
	}
	return total, nil
}

// Part2 sums the power of every game.
func Part2(ctx context.Context, input string, opts puzzle.Options) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var total puzzle.Answer
	for _, g := range games {
		total += puzzle.Answer(g.Power())
	}
	return total, nil
}
