package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/api/middleware"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/input"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/runner"
	"github.com/rs/zerolog"
)

type Handler struct {
	runner *runner.Runner
	logger *zerolog.Logger
}

func NewHandler(runner *runner.Runner, logger *zerolog.Logger) *Handler {
	return &Handler{
		runner: runner,
		logger: logger,
	}
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/puzzles
func (h *Handler) ListPuzzles(req *restful.Request, resp *restful.Response) {
	puzzles := []PuzzleInfo{}
	for _, p := range h.runner.Puzzles() {
		puzzles = append(puzzles, PuzzleInfo{Year: p.Year, Day: p.Day, Title: p.Title})
	}

	resp.WriteHeaderAndEntity(http.StatusOK, puzzles)
}

// GET /api/v1/puzzles/{year}/{day}?kind=examples
// Solves the puzzle with the input file stored on the server.
func (h *Handler) SolveStored(req *restful.Request, resp *restful.Response) {
	year, day, err := pathPuzzle(req)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	kind, err := input.ParseKind(req.QueryParameter("kind"))
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Int("year", year).
		Int("day", day).
		Str("kind", string(kind)).
		Msg("Solve stored input")

	result, err := h.runner.Solve(req.Request.Context(), runner.Request{Year: year, Day: day, Kind: kind})
	if err != nil {
		h.writeSolveError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/puzzles/{year}/{day}/solve
// Body: SolveRequest
// Returns: runner.Result
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	year, day, err := pathPuzzle(req)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	var solveRequest SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Int("year", year).
		Int("day", day).
		Int("input_bytes", len(solveRequest.Input)).
		Msg("Solve posted input")

	result, err := h.runner.SolveText(req.Request.Context(), year, day, solveRequest.Input)
	if err != nil {
		h.writeSolveError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

func (h *Handler) writeSolveError(resp *restful.Response, err error) {
	var parseErr *puzzle.ParseError

	switch {
	case errors.As(err, &parseErr):
		middleware.HandleError(resp, err, http.StatusBadRequest)
	case errors.Is(err, puzzle.ErrUnknownPuzzle), errors.Is(err, input.ErrInputNotFound):
		middleware.HandleError(resp, err, http.StatusNotFound)
	default:
		h.logger.Error().Err(err).Msg("Solve failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
	}
}

func pathPuzzle(req *restful.Request) (int, int, error) {
	year, err := strconv.Atoi(req.PathParameter("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", req.PathParameter("year"))
	}
	day, err := strconv.Atoi(req.PathParameter("day"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid day %q", req.PathParameter("day"))
	}
	return year, day, nil
}
