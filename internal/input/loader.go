package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

var ErrInputNotFound = errors.New("input file not found")

type Kind string

const (
	KindInputs   Kind = "inputs"
	KindExamples Kind = "examples"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindInputs:
		return KindInputs, nil
	case KindExamples:
		return KindExamples, nil
	}
	return "", fmt.Errorf("unknown input kind %q (supported: %s, %s)", s, KindInputs, KindExamples)
}

// FileLoader reads puzzle text from <Dir>/<kind>/<year>/dayNN.txt.
type FileLoader struct {
	Dir string
}

func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{Dir: dir}
}

func (l *FileLoader) Path(year, day int, kind Kind) string {
	return filepath.Join(l.Dir, string(kind), strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))
}

func (l *FileLoader) Load(ctx context.Context, year, day int, kind Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := l.Path(year, day, kind)
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return string(bytes), nil
}
