package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/api/middleware"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/runner"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.ListPuzzles).
			Doc("List registered puzzles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes([]PuzzleInfo{}).
			Returns(200, "OK", []PuzzleInfo{}))

	ws.
		Route(ws.GET("/puzzles/{year}/{day}").
			To(handler.SolveStored).
			Doc("Solve a puzzle with the input stored on the server").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Param(ws.PathParameter("year", "Event year").DataType("integer")).
			Param(ws.PathParameter("day", "Day of the event (1-25)").DataType("integer")).
			Param(ws.QueryParameter("kind", "Input kind (inputs, examples; default: inputs)").DataType("string").Required(false)).
			Writes(runner.Result{}).
			Returns(200, "OK", runner.Result{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle or Input Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/puzzles/{year}/{day}/solve").
			To(handler.Solve).
			Doc("Solve a puzzle with the posted input").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Param(ws.PathParameter("year", "Event year").DataType("integer")).
			Param(ws.PathParameter("day", "Day of the event (1-25)").DataType("integer")).
			Reads(SolveRequest{}).
			Writes(runner.Result{}).
			Returns(200, "OK", runner.Result{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
