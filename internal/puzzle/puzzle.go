package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAnswer is returned by a part when the input is empty or too degenerate to
// produce an answer. Callers report it as "no answer" instead of failing the run.
var ErrNoAnswer = errors.New("no answer for input")

// ErrInsufficientInput is wrapped by parts that need more data than the input holds.
// Only that part fails; the other part of the puzzle is still reported.
var ErrInsufficientInput = errors.New("insufficient input")

// Func solves one part of a puzzle. It is a pure function of the input text.
type Func func(input string) (int, error)

type Puzzle struct {
	Year  int
	Day   int
	Title string
	Part1 Func
	Part2 Func
}

func (p Puzzle) Key() string {
	return fmt.Sprintf("%d/day%02d", p.Year, p.Day)
}

// ParseError identifies the input line that could not be parsed.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Lines splits newline-delimited text. A trailing "\r" is dropped from every line and
// the empty element left behind by a final newline is not returned.
func Lines(input string) []string {
	if input == "" {
		return nil
	}

	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
