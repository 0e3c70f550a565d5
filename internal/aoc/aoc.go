// Package aoc registers every implemented Advent of Code solver.
package aoc

import (
	aoc2022day01 "github.com/povarna/generative-ai-with-go/advent-of-code/internal/aoc/2022/day01"
	aoc2022day02 "github.com/povarna/generative-ai-with-go/advent-of-code/internal/aoc/2022/day02"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/puzzle"
)

var puzzles = []puzzle.Puzzle{
	{Year: 2022, Day: 1, Title: aoc2022day01.Title, Part1: aoc2022day01.Part1, Part2: aoc2022day01.Part2},
	{Year: 2022, Day: 2, Title: aoc2022day02.Title, Part1: aoc2022day02.Part1, Part2: aoc2022day02.Part2},
}

func Register(r *puzzle.Registry) error {
	for _, p := range puzzles {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}

func NewRegistry() (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}
