package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrUnknownPuzzle = errors.New("unknown puzzle")

type key struct {
	year int
	day  int
}

// Registry holds the solvers known to a binary, keyed by year and day.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[key]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[key]Puzzle),
	}
}

func (r *Registry) Register(p Puzzle) error {
	if p.Year < 2015 {
		return fmt.Errorf("invalid year %d for %q", p.Year, p.Title)
	}
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("invalid day %d for %q", p.Day, p.Title)
	}
	if p.Part1 == nil || p.Part2 == nil {
		return fmt.Errorf("puzzle %s is missing a part", p.Key())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{year: p.Year, day: p.Day}
	if _, exists := r.puzzles[k]; exists {
		return fmt.Errorf("puzzle %s already registered", p.Key())
	}
	r.puzzles[k] = p

	return nil
}

func (r *Registry) Lookup(year, day int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[key{year: year, day: day}]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d/day%02d", ErrUnknownPuzzle, year, day)
	}

	return p, nil
}

// List returns every registered puzzle ordered by year, then day.
func (r *Registry) List() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		list = append(list, p)
	}

	slices.SortFunc(list, func(a, b Puzzle) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})

	return list
}
