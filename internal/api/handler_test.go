package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/aoc"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/api"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/api/middleware"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/input"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/runner"
	"github.com/rs/zerolog"
)

func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	registry, err := aoc.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	loader := input.NewFileLoader(filepath.Join("..", "..", "data"))
	handler := api.NewHandler(runner.NewRunner(registry, loader, &logger), &logger)

	container := restful.NewContainer()
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	return container
}

func postSolve(t *testing.T, container *restful.Container, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(api.SolveRequest{Input: body})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", restful.MIME_JSON)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	return recorder
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_ListPuzzles(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var puzzles []api.PuzzleInfo
	if err := json.Unmarshal(recorder.Body.Bytes(), &puzzles); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(puzzles) != 2 {
		t.Fatalf("Expected 2 puzzles, got %d", len(puzzles))
	}
	if puzzles[0].Day != 1 || puzzles[1].Day != 2 {
		t.Errorf("Expected puzzles ordered by day, got %+v", puzzles)
	}
}

func TestAPI_Solve(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		input      string
		expectCode int
		expectPart []int
		unsolved   []int
	}{
		{
			name:       "rock paper scissors",
			path:       "/api/v1/puzzles/2022/2/solve",
			input:      "A Y\nB X\nC Z\n",
			expectCode: http.StatusOK,
			expectPart: []int{15, 12},
		},
		{
			name:       "calorie counting",
			path:       "/api/v1/puzzles/2022/1/solve",
			input:      "1\n\n2\n\n3\n",
			expectCode: http.StatusOK,
			expectPart: []int{3, 6},
		},
		{
			name:       "malformed line",
			path:       "/api/v1/puzzles/2022/2/solve",
			input:      "A\n",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "single group keeps part one",
			path:       "/api/v1/puzzles/2022/1/solve",
			input:      "1000\n2000\n3000",
			expectCode: http.StatusOK,
			expectPart: []int{6000},
			unsolved:   []int{2},
		},
		{
			name:       "unknown puzzle",
			path:       "/api/v1/puzzles/2022/24/solve",
			input:      "",
			expectCode: http.StatusNotFound,
		},
		{
			name:       "invalid day",
			path:       "/api/v1/puzzles/2022/two/solve",
			input:      "",
			expectCode: http.StatusBadRequest,
		},
	}

	container := setupTestAPI(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postSolve(t, container, tt.path, tt.input)

			if recorder.Code != tt.expectCode {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectCode, recorder.Code, recorder.Body.String())
			}

			if tt.expectCode != http.StatusOK {
				var errResp middleware.ErrorResponse
				if err := json.Unmarshal(recorder.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("Failed to parse error response: %v", err)
				}
				if errResp.Code != tt.expectCode || errResp.Error == "" {
					t.Errorf("Unexpected error response: %+v", errResp)
				}
				return
			}

			var result runner.Result
			if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if len(result.Parts) != 2 {
				t.Fatalf("Expected 2 parts, got %d", len(result.Parts))
			}
			for i, want := range tt.expectPart {
				if !result.Parts[i].Solved || result.Parts[i].Answer != want {
					t.Errorf("Part %d = %+v; want answer %d", i+1, result.Parts[i], want)
				}
			}
			for _, part := range tt.unsolved {
				got := result.Parts[part-1]
				if got.Solved || got.Error == "" {
					t.Errorf("Expected part %d to be unsolved with an error, got %+v", part, got)
				}
			}
		})
	}
}

func TestAPI_SolveStored(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles/2022/1?kind=examples", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result runner.Result
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Parts[0].Answer != 24000 || result.Parts[1].Answer != 45000 {
		t.Errorf("Unexpected answers: %+v", result.Parts)
	}
}

func TestAPI_SolveStored_MissingInput(t *testing.T) {
	container := setupTestAPI(t)

	// Personal inputs are not checked in.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles/2022/1?kind=inputs", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", recorder.Code)
	}
}

func TestAPI_SolveStored_InvalidKind(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles/2022/1?kind=samples", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}
