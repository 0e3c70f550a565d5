package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/api"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/api/middleware"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/setup"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Advent of Code Solver API",
			Description: "Solves registered Advent of Code puzzles",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "puzzles", Description: "Puzzle listing and solving"}},
	}
}

func main() {
	// Load env before the logger reads LOG_LEVEL
	envErr := godotenv.Load()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(os.Getenv("LOG_LEVEL"))
	appLogger := log.Logger
	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	// Middleware logs through the global logger
	log.Logger = *deps.Logger

	// API
	handler := api.NewHandler(deps.Runner, deps.Logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.Settings.API.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", deps.Settings.API.Port)
	log.Info().Str("address", addr).Msg("Starting Advent of Code API")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
