package aoc2022day01

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/puzzle"
)

const Title = "Calorie Counting"

var ErrTooFewRuns = fmt.Errorf("fewer than three groups: %w", puzzle.ErrInsufficientInput)

func Part1(input string) (int, error) {
	acc := RunSums(input)
	if len(acc) == 0 {
		return 0, puzzle.ErrNoAnswer
	}

	return slices.Max(acc), nil
}

func Part2(input string) (int, error) {
	acc := RunSums(input)
	if len(acc) < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewRuns, len(acc))
	}

	slices.SortFunc(acc, func(a int, b int) int {
		return b - a
	})

	return acc[0] + acc[1] + acc[2], nil
}

// RunSums returns the sum of every run of numeric lines, in input order. Blank and
// unparseable lines close the current run; a run with no numbers is not emitted.
// A number is an unsigned 32-bit decimal with an optional leading '+' and no
// surrounding whitespace.
func RunSums(input string) []int {
	acc := []int{}
	total := 0
	open := false

	for _, line := range puzzle.Lines(input) {
		calories, err := strconv.ParseUint(strings.TrimPrefix(line, "+"), 10, 32)
		if err != nil {
			if open {
				acc = append(acc, total)
			}
			total, open = 0, false
			continue
		}
		total += int(calories)
		open = true
	}

	if open {
		acc = append(acc, total)
	}

	return acc
}
