package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type PuzzleInfo struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Title string `json:"title"`
}

type SolveRequest struct {
	Input string `json:"input"`
}
