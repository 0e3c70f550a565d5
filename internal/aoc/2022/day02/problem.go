package aoc2022day02

import (
	"errors"

	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/puzzle"
)

const Title = "Rock Paper Scissors"

type Round struct {
	Theirs Choice
	Ours   Choice
}

func (r Round) Score() int {
	return Score(r.Ours, r.Theirs)
}

// Strategy is a round where the second column names the outcome to play for.
type Strategy struct {
	Theirs  Choice
	Outcome Outcome
}

func (s Strategy) Round() Round {
	return Round{Theirs: s.Theirs, Ours: ChoiceFor(s.Theirs, s.Outcome)}
}

func ParseRound(line string) (Round, error) {
	first, second, err := splitLine(line)
	if err != nil {
		return Round{}, err
	}

	theirs, err := ParseChoice(first)
	if err != nil {
		return Round{}, err
	}
	ours, err := ParseChoice(second)
	if err != nil {
		return Round{}, err
	}

	return Round{Theirs: theirs, Ours: ours}, nil
}

func ParseStrategy(line string) (Strategy, error) {
	first, second, err := splitLine(line)
	if err != nil {
		return Strategy{}, err
	}

	theirs, err := ParseChoice(first)
	if err != nil {
		return Strategy{}, err
	}
	outcome, err := ParseOutcome(second)
	if err != nil {
		return Strategy{}, err
	}

	return Strategy{Theirs: theirs, Outcome: outcome}, nil
}

var errMalformedLine = errors.New("expected <theirs> <ours>")

func splitLine(line string) (byte, byte, error) {
	if len(line) != 3 || line[1] != ' ' {
		return 0, 0, errMalformedLine
	}
	return line[0], line[2], nil
}

func Part1(input string) (int, error) {
	return total(input, func(line string) (Round, error) {
		return ParseRound(line)
	})
}

func Part2(input string) (int, error) {
	return total(input, func(line string) (Round, error) {
		s, err := ParseStrategy(line)
		if err != nil {
			return Round{}, err
		}
		return s.Round(), nil
	})
}

func total(input string, parse func(string) (Round, error)) (int, error) {
	sum := 0
	for i, line := range puzzle.Lines(input) {
		round, err := parse(line)
		if err != nil {
			return 0, &puzzle.ParseError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		sum += round.Score()
	}

	return sum, nil
}
