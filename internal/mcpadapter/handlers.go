package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/input"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/runner"
)

// SolveInput is the MCP tool input schema for solving a puzzle.
type SolveInput struct {
	Year  int     `json:"year" jsonschema:"event year, e.g. 2022"`
	Day   int     `json:"day" jsonschema:"day of the event (1-25)"`
	Input *string `json:"input,omitempty" jsonschema:"puzzle input text, may be empty; when omitted the stored input of the given kind is used"`
	Kind  string  `json:"kind,omitempty" jsonschema:"stored input kind: inputs or examples (default: inputs)"`
}

type ListInput struct{}

type PuzzleSummary struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Title string `json:"title"`
}

type ListOutput struct {
	Puzzles []PuzzleSummary `json:"puzzles"`
}

// NewSolveHandler returns a tool handler that uses the given runner.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(run *runner.Runner) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, runner.Result, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in SolveInput) (*mcp.CallToolResult, runner.Result, error) {
		return SolvePuzzle(ctx, run, req, in)
	}
}

// SolvePuzzle runs both parts of the requested puzzle.
func SolvePuzzle(
	ctx context.Context,
	run *runner.Runner,
	req *mcp.CallToolRequest,
	in SolveInput,
) (*mcp.CallToolResult, runner.Result, error) {
	if in.Input != nil {
		result, err := run.SolveText(ctx, in.Year, in.Day, *in.Input)
		return nil, result, err
	}

	kind, err := input.ParseKind(in.Kind)
	if err != nil {
		return nil, runner.Result{}, err
	}

	result, err := run.Solve(ctx, runner.Request{Year: in.Year, Day: in.Day, Kind: kind})
	if err != nil {
		return nil, runner.Result{}, fmt.Errorf("solve %d/day%02d: %w", in.Year, in.Day, err)
	}

	return nil, result, nil
}

func NewListHandler(run *runner.Runner) func(context.Context, *mcp.CallToolRequest, ListInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		out := ListOutput{Puzzles: []PuzzleSummary{}}
		for _, p := range run.Puzzles() {
			out.Puzzles = append(out.Puzzles, PuzzleSummary{Year: p.Year, Day: p.Day, Title: p.Title})
		}
		return nil, out, nil
	}
}
