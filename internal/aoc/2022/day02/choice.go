package aoc2022day02

import "fmt"

// Choice is encoded so that every choice beats the one just before it, modulo 3.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

var choiceNames = [...]string{"rock", "paper", "scissors"}

func (c Choice) String() string {
	if c < Rock || c > Scissors {
		return fmt.Sprintf("choice(%d)", int(c))
	}
	return choiceNames[c]
}

// Value is the base score for playing c.
func (c Choice) Value() int {
	return int(c) + 1
}

// Beats returns the choice that c defeats.
func (c Choice) Beats() Choice {
	return (c + 2) % 3
}

type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

var outcomeNames = [...]string{"lose", "draw", "win"}

func (o Outcome) String() string {
	if o < Lose || o > Win {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

func (o Outcome) Bonus() int {
	return 3 * int(o)
}

// OutcomeOf is the result of playing ours against theirs.
func OutcomeOf(ours, theirs Choice) Outcome {
	return Outcome((ours - theirs + 4) % 3)
}

// ChoiceFor returns the choice that produces outcome against theirs.
func ChoiceFor(theirs Choice, outcome Outcome) Choice {
	return (theirs + Choice(outcome) + 2) % 3
}

func Score(ours, theirs Choice) int {
	return ours.Value() + OutcomeOf(ours, theirs).Bonus()
}

func ParseChoice(symbol byte) (Choice, error) {
	switch symbol {
	case 'A', 'X':
		return Rock, nil
	case 'B', 'Y':
		return Paper, nil
	case 'C', 'Z':
		return Scissors, nil
	}
	return 0, fmt.Errorf("invalid move %q", symbol)
}

func ParseOutcome(symbol byte) (Outcome, error) {
	switch symbol {
	case 'X':
		return Lose, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	}
	return 0, fmt.Errorf("invalid outcome %q", symbol)
}
