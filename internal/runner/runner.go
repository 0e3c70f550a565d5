package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/input"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/puzzle"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_loader.go -package=mocks . Loader

// Loader supplies the puzzle text for a year and day.
type Loader interface {
	Load(ctx context.Context, year, day int, kind input.Kind) (string, error)
}

type Request struct {
	Year int
	Day  int
	Kind input.Kind
}

type PartResult struct {
	Part     int           `json:"part"`
	Solved   bool          `json:"solved"`
	Answer   int           `json:"answer"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

type Result struct {
	Year  int          `json:"year"`
	Day   int          `json:"day"`
	Title string       `json:"title"`
	Parts []PartResult `json:"parts"`
}

type Runner struct {
	registry *puzzle.Registry
	loader   Loader
	logger   *zerolog.Logger
}

func NewRunner(registry *puzzle.Registry, loader Loader, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		loader:   loader,
		logger:   logger,
	}
}

func (r *Runner) Puzzles() []puzzle.Puzzle {
	return r.registry.List()
}

// Solve loads the input for the request and runs both parts against it.
func (r *Runner) Solve(ctx context.Context, req Request) (Result, error) {
	if _, err := r.registry.Lookup(req.Year, req.Day); err != nil {
		return Result{}, err
	}

	text, err := r.loader.Load(ctx, req.Year, req.Day, req.Kind)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load %s input: %w", req.Kind, err)
	}

	return r.SolveText(ctx, req.Year, req.Day, text)
}

// SolveText runs both parts of a puzzle against text. A part without an answer, or
// one that needs more input than it got, is reported as unsolved with its error and
// the other part is still run. Any other failure, a ParseError included, aborts the
// run with no partial result.
func (r *Runner) SolveText(ctx context.Context, year, day int, text string) (Result, error) {
	p, err := r.registry.Lookup(year, day)
	if err != nil {
		return Result{}, err
	}

	result := Result{Year: p.Year, Day: p.Day, Title: p.Title}

	for i, solve := range []puzzle.Func{p.Part1, p.Part2} {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		part := i + 1
		start := time.Now()
		answer, err := solve(text)
		elapsed := time.Since(start)

		if errors.Is(err, puzzle.ErrNoAnswer) || errors.Is(err, puzzle.ErrInsufficientInput) {
			r.logger.Warn().
				Err(err).
				Str("puzzle", p.Key()).
				Int("part", part).
				Msg("No answer for input")
			result.Parts = append(result.Parts, PartResult{Part: part, Error: err.Error(), Duration: elapsed})
			continue
		}
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("puzzle", p.Key()).
				Int("part", part).
				Msg("Part failed")
			return Result{}, fmt.Errorf("%s part %d: %w", p.Key(), part, err)
		}

		r.logger.Info().
			Str("puzzle", p.Key()).
			Int("part", part).
			Int("answer", answer).
			Dur("duration", elapsed).
			Msg("Part solved")

		result.Parts = append(result.Parts, PartResult{
			Part:     part,
			Solved:   true,
			Answer:   answer,
			Duration: elapsed,
		})
	}

	return result, nil
}
